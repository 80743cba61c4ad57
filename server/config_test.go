package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func Test_ParseStore(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Store
		expectErr bool
	}{
		{name: "empty", input: "", expect: Store{Kind: StoreInMemory}},
		{name: "inmem", input: "inmem", expect: Store{Kind: StoreInMemory}},
		{name: "inmem uppercase", input: "INMEM", expect: Store{Kind: StoreInMemory}},
		{name: "inmem with params", input: "inmem:/data", expectErr: true},
		{name: "sqlite", input: "sqlite:/var/moonlight", expect: Store{Kind: StoreSQLite, Dir: "/var/moonlight"}},
		{name: "sqlite with spaces", input: " sqlite : data ", expect: Store{Kind: StoreSQLite, Dir: "data"}},
		{name: "sqlite without dir", input: "sqlite", expectErr: true},
		{name: "none", input: "none", expectErr: true},
		{name: "unknown", input: "postgres:localhost", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := ParseStore(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func Test_Config_FillDefaults(t *testing.T) {
	testCases := []struct {
		name   string
		input  Config
		expect Config
	}{
		{
			name:   "all unset",
			input:  Config{},
			expect: Config{World: DefaultWorldFile, UnauthDelay: DefaultUnauthDelay},
		},
		{
			name:   "set values kept",
			input:  Config{World: "mall.yaml", UnauthDelay: -1, Store: Store{Kind: StoreSQLite, Dir: "data"}},
			expect: Config{World: "mall.yaml", UnauthDelay: -1, Store: Store{Kind: StoreSQLite, Dir: "data"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.input.FillDefaults())
		})
	}
}

func Test_Config_FillDefaults_storeIsInMemory(t *testing.T) {
	cfg := Config{Secret: testSecret}.FillDefaults()

	assert.Equal(t, StoreInMemory, cfg.Store.Kind)
	assert.NoError(t, cfg.Validate())
}

func Test_Config_Validate(t *testing.T) {
	good := Config{
		Secret: testSecret,
		World:  "world.toml",
	}

	testCases := []struct {
		name      string
		modify    func(c *Config)
		expectErr bool
	}{
		{name: "valid", modify: func(c *Config) {}},
		{name: "no secret", modify: func(c *Config) { c.Secret = nil }, expectErr: true},
		{name: "short secret", modify: func(c *Config) { c.Secret = []byte("short") }, expectErr: true},
		{name: "long secret", modify: func(c *Config) { c.Secret = make([]byte, MaxSecretSize+1) }, expectErr: true},
		{name: "sqlite without dir", modify: func(c *Config) { c.Store = Store{Kind: StoreSQLite} }, expectErr: true},
		{name: "unknown store", modify: func(c *Config) { c.Store = Store{Kind: StoreKind(7)} }, expectErr: true},
		{name: "no world", modify: func(c *Config) { c.World = "" }, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := good
			tc.modify(&cfg)

			err := cfg.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Config_delay(t *testing.T) {
	assert.Equal(t, time.Duration(0), Config{UnauthDelay: -1}.delay())
	assert.Equal(t, 2*time.Second, Config{UnauthDelay: 2 * time.Second}.delay())
}
