package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dotup/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "DOTUP_"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load reads configuration from the given file path, layered over the
// embedded defaults and under DOTUP_* environment overrides. The result is
// normalized but not validated: mutating commands call Validate and abort,
// verify reports Problems as one of its check sections.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. Repo config file
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrConfigLoad, "config file not found: %s (run 'dotup genconfig' to create one)", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot stat config file %s", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	// 3. Environment overrides (DOTUP_SCAN_FILES=... etc.)
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	cfg.normalize()
	return cfg, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
