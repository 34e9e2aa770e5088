package gate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
	"github.com/iov-one/quorum/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfiguration(store.MemStore())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfiguration(), conf)
	assert.Equal(t, 5*time.Second, conf.DirectoryTimeout())
	assert.NoError(t, conf.Validate())
}

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		Conf    Configuration
		WantErr *errors.Error
	}{
		"default":          {Conf: DefaultConfiguration()},
		"limited":          {Conf: Configuration{DirectoryTimeoutMs: 10, MaxSignatures: 3}},
		"zero timeout":     {Conf: Configuration{}, WantErr: errors.ErrInput},
		"negative maximum": {Conf: Configuration{DirectoryTimeoutMs: 1, MaxSignatures: -1}, WantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Conf.Validate()
			assert.True(t, tc.WantErr.Is(err), "unexpected error: %v", err)
		})
	}
}

func TestConfigurationWithDefaults(t *testing.T) {
	cases := map[string]struct {
		Conf Configuration
		Want Configuration
	}{
		"unset":          {Conf: Configuration{}, Want: DefaultConfiguration()},
		"limit only":     {Conf: Configuration{MaxSignatures: 4}, Want: Configuration{DirectoryTimeoutMs: 5000, MaxSignatures: 4}},
		"timeout only":   {Conf: Configuration{DirectoryTimeoutMs: 10}, Want: Configuration{DirectoryTimeoutMs: 10}},
		"negative limit": {Conf: Configuration{DirectoryTimeoutMs: -1, MaxSignatures: -3}, Want: DefaultConfiguration()},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := tc.Conf.withDefaults()
			assert.Equal(t, tc.Want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestConfigurationSaveLoad(t *testing.T) {
	db := store.MemStore()
	want := Configuration{DirectoryTimeoutMs: 1500, MaxSignatures: 21}
	require.NoError(t, SaveConfiguration(db, want))

	got, err := LoadConfiguration(db)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1500*time.Millisecond, got.DirectoryTimeout())

	err = SaveConfiguration(db, Configuration{})
	assert.True(t, errors.ErrInput.Is(err))
}

func TestConfigurationCorrupted(t *testing.T) {
	db := store.MemStore()
	require.NoError(t, db.Set(gconf.Key(confPkg), []byte{0xff, 0xff}))
	_, err := LoadConfiguration(db)
	assert.Error(t, err)
}

func TestInitializer(t *testing.T) {
	cases := map[string]struct {
		Genesis string
		Want    Configuration
		WantErr *errors.Error
	}{
		"configured": {
			Genesis: `{"conf": {"gate": {"directory_timeout_ms": 2000, "max_signatures": 64}}}`,
			Want:    Configuration{DirectoryTimeoutMs: 2000, MaxSignatures: 64},
		},
		"defaults when missing": {
			Genesis: `{"authority": {"addresses": []}}`,
			Want:    DefaultConfiguration(),
		},
		"invalid": {
			Genesis: `{"conf": {"gate": {"directory_timeout_ms": 0}}}`,
			WantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts quorum.Options
			require.NoError(t, json.Unmarshal([]byte(tc.Genesis), &opts))
			db := store.MemStore()

			err := Initializer{}.FromGenesis(opts, db)
			require.True(t, tc.WantErr.Is(err), "unexpected error: %+v", err)
			if tc.WantErr != nil {
				return
			}
			got, err := LoadConfiguration(db)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
}
