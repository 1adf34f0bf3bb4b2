package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enumkit"
)

// File is the on-disk form of a catalog.
//
//	enums:
//	  - name: Color
//	    description: primary colors
//	    values: [RED, GREEN, BLUE]
type File struct {
	Enums []Definition `yaml:"enums" validate:"required,min=1,unique=Name,dive"`
}

// Definition declares one enumeration.
type Definition struct {
	Name        string   `yaml:"name" validate:"required,identifier"`
	Description string   `yaml:"description,omitempty" validate:"max=500"`
	Values      []string `yaml:"values" validate:"unique,dive,identifier"`
}

// File names searched when Load is given a directory.
var fileNames = []string{"enums.yaml", "enums.yml"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their YAML keys.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("identifier", identifierValidator); err != nil {
		panic(fmt.Sprintf("failed to register identifier validator: %v", err))
	}
	return v
}

// identifierValidator rejects empty names and names containing whitespace.
func identifierValidator(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s != "" && !strings.ContainsAny(s, " \t\r\n")
}

// Load reads a catalog file. If path is a directory, enums.yaml and then
// enums.yml are tried inside it.
func Load(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	cfg := newConfig(opts)

	ctx, span := cfg.tracer().Start(ctx, "catalog.Load")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.path", path))

	c, err := func() (*Catalog, error) {
		file, err := resolve(path)
		if err != nil {
			return nil, err
		}
		span.SetAttributes(attribute.String("catalog.file", file))

		f, err := os.Open(file)
		if err != nil {
			return nil, enumkit.NewConfigurationError("catalog.Load", fmt.Errorf("failed to open catalog: %w", err))
		}
		defer enumkit.CloseWithLog(f, cfg.logger, "catalog file")

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, enumkit.NewConfigurationError("catalog.Load", fmt.Errorf("failed to read catalog: %w", err))
		}
		return parse(data)
	}()

	cfg.record(ctx, span, err)
	if err != nil {
		cfg.logger.Error("failed to load enum catalog", "path", path, "error", err)
		return nil, err
	}

	cfg.logger.Debug("loaded enum catalog", "path", path, "enums", len(c.order))
	return c, nil
}

// Parse builds a catalog from YAML data.
func Parse(ctx context.Context, data []byte, opts ...Option) (*Catalog, error) {
	cfg := newConfig(opts)

	ctx, span := cfg.tracer().Start(ctx, "catalog.Parse")
	defer span.End()

	c, err := parse(data)
	cfg.record(ctx, span, err)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("parsed enum catalog", "enums", len(c.order))
	return c, nil
}

// record marks the span and counts the load outcome.
func (c *config) record(ctx context.Context, span trace.Span, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if counter := c.loadCounter(); counter != nil {
		counter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}
}

func resolve(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", enumkit.NewConfigurationError("catalog.Load", fmt.Errorf("failed to stat path: %w", err))
	}
	if !info.IsDir() {
		return path, nil
	}

	for _, name := range fileNames {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", enumkit.NewConfigurationError("catalog.Load",
		fmt.Errorf("%w: no %s found in %s", enumkit.ErrInvalidConfig, strings.Join(fileNames, " or "), path))
}

func parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, enumkit.NewConfigurationError("catalog.Parse", fmt.Errorf("%w: empty catalog", enumkit.ErrInvalidConfig))
		}
		return nil, enumkit.NewConfigurationError("catalog.Parse", fmt.Errorf("%w: %v", enumkit.ErrInvalidConfig, err))
	}

	if err := validate.Struct(&f); err != nil {
		return nil, validationError(err)
	}

	return New(f.Enums...)
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return enumkit.NewConfigurationError("catalog.Parse", fmt.Errorf("%w: %v", enumkit.ErrInvalidConfig, err))
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return enumkit.NewConfigurationError("catalog.Parse",
		fmt.Errorf("%w: %s", enumkit.ErrInvalidConfig, strings.Join(msgs, "; ")))
}
