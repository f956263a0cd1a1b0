package modfile

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ArkTools_Go/internal/item"
	"github.com/osse101/ArkTools_Go/internal/logger"
	"github.com/osse101/ArkTools_Go/internal/utils"
	"github.com/osse101/ArkTools_Go/internal/validation"
)

//go:embed schema.json
var schema []byte

// ErrInvalidFile wraps every semantic problem found after schema validation
var ErrInvalidFile = errors.New("invalid modification file")

// File is a batch of JSON item records: items to add to live inventories,
// keyed by inventory object id, and items to upload to the cluster
type File struct {
	Version     string                  `json:"version" validate:"required,eq=1"`
	Description string                  `json:"description,omitempty"`
	Inventories map[int32][]item.Record `json:"inventories,omitempty" validate:"dive,keys,gte=0,endkeys,required"`
	Cluster     []item.Record           `json:"cluster,omitempty"`
}

// InventoryIDs returns the target inventory ids in ascending order
func (f *File) InventoryIDs() []int32 {
	ids := make([]int32, 0, len(f.Inventories))
	for id := range f.Inventories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ItemCount returns the number of records across inventories and cluster
func (f *File) ItemCount() int {
	n := len(f.Cluster)
	for _, records := range f.Inventories {
		n += len(records)
	}
	return n
}

// Loader reads and checks modification files
type Loader interface {
	Load(ctx context.Context, path string) (*File, error)
	Parse(data []byte) (*File, error)
	Validate(f *File) error
}

type fileLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a Loader with the embedded schema registered
func NewLoader() (Loader, error) {
	sv := validation.NewSchemaValidator()
	if err := sv.Register(SchemaName, schema); err != nil {
		return nil, fmt.Errorf(ErrMsgRegisterSchema, err)
	}
	return &fileLoader{
		schemaValidator: sv,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// Load reads path ("-" for stdin), validates it against the schema and parses it
func (l *fileLoader) Load(ctx context.Context, path string) (*File, error) {
	data, err := utils.ReadInput(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	f, err := l.Parse(data)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(f); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgLoaded,
		"path", path,
		"inventories", len(f.Inventories),
		"items", f.ItemCount())
	return f, nil
}

// Parse decodes a modification file without schema checks
func (l *fileLoader) Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailed, err)
	}
	return &f, nil
}

// Validate checks the parsed file for problems the schema cannot express
func (l *fileLoader) Validate(f *File) error {
	if f == nil {
		return fmt.Errorf(ErrFmtInvalidValidation, ErrInvalidFile, ErrMsgFileNil)
	}
	if err := l.validate.Struct(f); err != nil {
		return fmt.Errorf(ErrFmtInvalidValidation, ErrInvalidFile, err.Error())
	}
	if len(f.Cluster) == 0 && len(f.Inventories) == 0 {
		return fmt.Errorf(ErrFmtInvalidValidation, ErrInvalidFile, ErrMsgNothingToDo)
	}
	return nil
}
