/*
Package authority provides the directory of authorities, the ordered list
of identities whose signatures can authorize an operation.

The gate never manages membership. It asks a Directory for the current
list on every authorization attempt. Static serves a fixed list,
StoreDirectory reads the list saved in the database (usually seeded from
genesis) and HTTPDirectory queries a remote service.
*/
package authority
