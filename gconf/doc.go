/*
Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Each package that needs configuration declares a protobuf record with a
Validate method. The record is loaded from the "conf" section of the
genesis file and saved under a singleton key for that package. At runtime
the package loads it back with Load.

Not being able to get a configuration value is a critical condition for
the application. Callers usually fall back to defaults only when the
record was never saved (ErrNotFound).
*/
package gconf
