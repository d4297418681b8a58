package character

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/tabletop-inventory/internal/errors"
)

const (
	documentExt = ".json"

	// Error messages
	errCharacterNil = "character cannot be nil"
	errPathEmpty    = "path cannot be empty"
)

type fileRepository struct {
	dir string
}

// FileConfig contains configuration for the file-backed character repository.
type FileConfig struct {
	// Dir holds one <id>.json document per character. It is created if absent.
	Dir string
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", cfg.Dir, vb)
	return vb.Build()
}

// NewFile creates a character repository that stores each character as a JSON
// document in a directory
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create save directory %s", cfg.Dir)
	}

	return &fileRepository{dir: cfg.Dir}, nil
}

func (r *fileRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	path, err := r.documentPath(input.Character.ID)
	if err != nil {
		return nil, err
	}

	data, err := Encode(input.Character)
	if err != nil {
		return nil, err
	}

	if err := atomicWrite(path, data, 0o644); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", path).
			WithMeta("character_id", input.Character.ID)
	}

	return &SaveOutput{Path: path, Data: data}, nil
}

func (r *fileRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("character file %s not found", input.Path).
				WithMeta("path", input.Path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", input.Path).
			WithMeta("path", input.Path)
	}

	c, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", filepath.Base(input.Path)).
			WithMeta("path", input.Path)
	}

	return &LoadOutput{Character: c}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	path, err := r.documentPath(input.ID)
	if err != nil {
		return nil, err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &DeleteOutput{Deleted: false}, nil
		}
		return nil, errors.Wrapf(err, "failed to remove %s", path).
			WithMeta("character_id", input.ID)
	}

	return &DeleteOutput{Deleted: true}, nil
}

func (r *fileRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("save directory %s not found", r.dir)
		}
		return nil, errors.Wrapf(err, "failed to list %s", r.dir)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		// Only top-level json documents; temp files from interrupted writes end in .tmp
		if entry.IsDir() || filepath.Ext(entry.Name()) != documentExt {
			continue
		}
		paths = append(paths, filepath.Join(r.dir, entry.Name()))
	}

	return &ListOutput{Paths: paths}, nil
}

// documentPath maps an ID to <dir>/<id>.json. IDs are opaque; only names that
// would leave the directory are refused.
func (r *fileRepository) documentPath(id string) (string, error) {
	if id == "" || id == "." || id == ".." || filepath.Base(id) != id || strings.ContainsAny(id, `/\`) {
		return "", errors.InvalidArgumentf("character ID %q cannot be used as a file name", id)
	}
	return filepath.Join(r.dir, id+documentExt), nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
// This prevents partial or empty files if the process is interrupted.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			slog.Warn("failed to remove temp file after rename failure", "path", tmp, "error", removeErr)
		}
		return errors.Wrap(err, "renaming temp file")
	}
	return nil
}
