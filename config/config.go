// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/dependencyinjector/webapp/config/codec"
	"github.com/dependencyinjector/webapp/config/source"
)

const tagName = "config"

// Option configures a [Load] call.
type Option func(l *loader) error

type loader struct {
	sources []Source
}

// WithFile adds a configuration file. The format follows the extension:
// .yaml/.yml, .toml or .json. Environment variables in path are expanded.
//
// Example:
//
//	cfg, err := config.Load(ctx,
//	    config.WithFile("webapp.yaml"),
//	    config.WithEnv("WEBAPP_"),
//	)
func WithFile(path string) Option {
	return func(l *loader) error {
		decoder, err := codec.ForPath(path)
		if err != nil {
			return NewError("file-source", "detect-format", err)
		}
		l.sources = append(l.sources, source.NewFile(path, decoder))

		return nil
	}
}

// WithOptionalFile is [WithFile] for a file that may be absent.
// A missing file adds nothing.
func WithOptionalFile(path string) Option {
	return func(l *loader) error {
		if _, err := os.Stat(os.ExpandEnv(path)); errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return WithFile(path)(l)
	}
}

// WithContent adds an in-memory document of the given type.
func WithContent(data []byte, typ codec.Type) Option {
	return func(l *loader) error {
		decoder, err := codec.Get(typ)
		if err != nil {
			return NewError("content-source", "get-decoder", err)
		}
		l.sources = append(l.sources, source.NewFileContent(data, decoder))

		return nil
	}
}

// WithEnv adds environment variables named prefix + KEY, where KEY is a
// dotted setting key in upper case with dots replaced by underscores:
// WEBAPP_SERVER_ADDR sets server.addr.
func WithEnv(prefix string) Option {
	return func(l *loader) error {
		l.sources = append(l.sources, source.NewEnv(prefix, Keys()))
		return nil
	}
}

// WithValues adds explicit values keyed by dotted setting keys, such as
// command-line flag overrides. Empty strings are ignored.
func WithValues(values map[string]string) Option {
	return func(l *loader) error {
		l.sources = append(l.sources, SourceFunc(func(context.Context) (map[string]any, error) {
			conf := make(map[string]any)
			for key, val := range values {
				if val != "" {
					setPath(conf, strings.Split(key, "."), val)
				}
			}

			return conf, nil
		}))

		return nil
	}
}

// WithSource adds a custom source.
func WithSource(src Source) Option {
	return func(l *loader) error {
		if src == nil {
			return NewError("source", "add", errors.New("source cannot be nil"))
		}
		l.sources = append(l.sources, src)

		return nil
	}
}

// Load builds [Settings] from defaults and the given sources.
//
// Sources are merged in order with later values winning, decoded into
// Settings, completed with `default` tags and validated. Every error
// matches [ErrInvalidConfig].
func Load(ctx context.Context, opts ...Option) (*Settings, error) {
	l := &loader{}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	values, err := l.merge(ctx)
	if err != nil {
		return nil, err
	}

	s := &Settings{}
	if err = applyDefaults(s); err != nil {
		return nil, err
	}
	if err = decode(values, s); err != nil {
		return nil, err
	}
	s.normalize()

	if err = validate(s); err != nil {
		return nil, err
	}

	return s, nil
}

// MustLoad is like [Load] but panics on error.
func MustLoad(ctx context.Context, opts ...Option) *Settings {
	s, err := Load(ctx, opts...)
	if err != nil {
		panic(fmt.Sprintf("config.MustLoad: %v", err))
	}

	return s
}

// Default returns the settings built from `default` tags alone.
func Default() Settings {
	return *MustLoad(context.Background())
}

func (l *loader) merge(ctx context.Context) (map[string]any, error) {
	merged := make(map[string]any)

	for i, src := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "load", err)
		}

		conf, err := src.Load(ctx)
		if err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "load", err)
		}
		if conf == nil {
			continue
		}

		if err = mergo.Map(&merged, normalizeMapKeys(conf), mergo.WithOverride); err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "merge", err)
		}
	}

	return merged, nil
}

func decode(values map[string]any, s *Settings) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          tagName,
		WeaklyTypedInput: true,
		Result:           s,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return NewError("settings", "decode", err)
	}
	if err = dec.Decode(values); err != nil {
		return NewError("settings", "decode", err)
	}

	return nil
}

var validate = newValidator()

func newValidator() func(s *Settings) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get(tagName)
	})

	return func(s *Settings) error {
		err := v.Struct(s)
		if err == nil {
			return nil
		}

		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return NewError("settings", "validate", err)
		}

		errs := make([]error, 0, len(verrs))
		for _, fe := range verrs {
			field := fe.Namespace()
			if _, rest, ok := strings.Cut(field, "."); ok {
				field = rest
			}
			errs = append(errs, NewFieldError("settings", field, "validate", ruleError(fe)))
		}

		return errors.Join(errs...)
	}
}

func ruleError(fe validator.FieldError) error {
	val := fe.Value()
	if d, ok := val.(time.Duration); ok {
		val = d.String()
	}
	if fe.Param() != "" {
		return fmt.Errorf("value %v fails %s=%s", val, fe.Tag(), fe.Param())
	}

	return fmt.Errorf("value %v fails %s", val, fe.Tag())
}

// normalizeMapKeys lower-cases keys so sources merge case-insensitively.
func normalizeMapKeys(m map[string]any) map[string]any {
	normalized := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeMapKeys(nested)
		}
		normalized[strings.ToLower(k)] = v
	}

	return normalized
}

func setPath(m map[string]any, parts []string, val any) {
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = val
}
