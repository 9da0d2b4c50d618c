package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davesmith10/image2pgf/internal/imageio"
	"github.com/davesmith10/image2pgf/internal/naming"
)

// FileOptions extends Options with input loading and output placement.
type FileOptions struct {
	Options
	Load      imageio.LoadOptions
	OutputDir string // directory for the .pgf file; current directory if empty
}

// FileResult is the outcome of ConvertFile.
type FileResult struct {
	Result
	InputPath  string
	OutputPath string
	Bytes      int64
}

// ConvertFile converts the image at inputPath into <namespace>.pgf inside
// opts.OutputDir. The document is written to a temporary file that is only
// renamed into place once complete, so a failed run leaves no output.
func ConvertFile(inputPath string, opts FileOptions) (*FileResult, error) {
	ns := opts.Namespace
	if ns == "" {
		ns = naming.Namespace(inputPath)
	}
	if ns == "" {
		return nil, fmt.Errorf("cannot derive output name from %q", inputPath)
	}
	opts.Namespace = ns

	img, err := imageio.Load(inputPath, opts.Load)
	if err != nil {
		return nil, err
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	outPath := filepath.Join(dir, ns+naming.Extension)

	res, size, err := writeAtomic(outPath, func(f *os.File) (*Result, error) {
		return Run(img, f, opts.Options)
	})
	if err != nil {
		return nil, err
	}

	return &FileResult{
		Result:     *res,
		InputPath:  inputPath,
		OutputPath: outPath,
		Bytes:      size,
	}, nil
}

func writeAtomic(path string, write func(f *os.File) (*Result, error)) (res *Result, size int64, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, 0, fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if res, err = write(tmp); err != nil {
		return nil, 0, err
	}
	st, err := tmp.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("writing output: %w", err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return nil, 0, fmt.Errorf("writing output: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return nil, 0, fmt.Errorf("writing output: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return nil, 0, fmt.Errorf("writing output: %w", err)
	}
	return res, st.Size(), nil
}
