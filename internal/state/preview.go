package state

import (
	"os"
	"path/filepath"
	"strings"

	fsutil "github.com/Fabian1409/seldir/internal/fs"
	"github.com/bmatcuk/doublestar/v4"
)

const previewMaxLines = 200

// PreviewKind is the declared content kind of a non-directory entry.
type PreviewKind int

const (
	PreviewText PreviewKind = iota
	PreviewPDF
	PreviewImage
)

func (k PreviewKind) String() string {
	switch k {
	case PreviewPDF:
		return "pdf"
	case PreviewImage:
		return "image"
	default:
		return "text"
	}
}

var previewKindPatterns = []struct {
	pattern string
	kind    PreviewKind
}{
	{"*.pdf", PreviewPDF},
	{"*.{png,jpg,jpeg,gif,bmp,webp,tif,tiff,ico,svg,heic,avif}", PreviewImage},
}

// ClassifyPreview derives a PreviewKind from the file extension.
func ClassifyPreview(path string) PreviewKind {
	name := strings.ToLower(filepath.Base(path))
	for _, p := range previewKindPatterns {
		if ok, err := doublestar.Match(p.pattern, name); err == nil && ok {
			return p.kind
		}
	}
	return PreviewText
}

// PreviewRequest is what the preview renderer receives for a file.
type PreviewRequest struct {
	Path string
	Kind PreviewKind
}

// PreviewData is the rendered-ready content for the Next column.
type PreviewData struct {
	Path      string
	Kind      PreviewKind
	Lines     []string
	Binary    bool
	Truncated bool
	Err       error
}

// DispatchPreview decides what the Next column needs for entry: nil for
// directories and unreadable entries (they are listed or left empty), a
// preview request for files.
func DispatchPreview(entry FileEntry) *PreviewRequest {
	if entry.Kind != fsutil.KindFile {
		return nil
	}
	return &PreviewRequest{Path: entry.Path, Kind: ClassifyPreview(entry.Path)}
}

// BuildPreview reads the content a request needs. Only text previews touch
// the file; PDF and image previews are left to the renderer.
func BuildPreview(req PreviewRequest) *PreviewData {
	data := &PreviewData{Path: req.Path, Kind: req.Kind}
	if req.Kind != PreviewText {
		return data
	}

	sample, err := fsutil.ReadTextSample(req.Path, previewMaxLines)
	if err != nil {
		data.Err = err
		return data
	}
	data.Lines = sample.Lines
	data.Binary = sample.Binary
	data.Truncated = sample.Truncated
	return data
}

// refreshNext re-derives the Next column and status metadata from the
// Current selection.
func (r *StateReducer) refreshNext(state *BrowserState) {
	state.cancelPreview()
	state.Selection = nil

	entry, ok := state.Current.Selected()
	if !ok {
		state.Next.Clear()
		return
	}
	state.Selection = statSelection(entry.Path)

	if entry.IsDir() {
		entries, err := state.lister().ReadDir(entry.Path, state.ShowHidden)
		if err != nil {
			entries = nil
		}
		state.Next.SetEntries(entries)
		state.Next.SelectFirst()
		return
	}

	state.Next.Clear()
	r.dispatchPreview(state, entry)
}

func (r *StateReducer) dispatchPreview(state *BrowserState, entry FileEntry) {
	req := DispatchPreview(entry)
	if req == nil {
		return
	}
	state.Preview = req
	state.previewToken++
	token := state.previewToken

	loader := state.PreviewLoader
	dispatch := state.getDispatch()
	if loader == nil || dispatch == nil {
		state.PreviewData = BuildPreview(*req)
		return
	}

	loader.Start(PreviewLoadRequest{
		Token:   token,
		Request: *req,
		Callback: func(result PreviewLoadResult) {
			dispatch(PreviewLoadResultAction{
				Token:   result.Token,
				Path:    result.Path,
				Preview: result.Data,
			})
		},
	})
}

func (s *BrowserState) cancelPreview() {
	if s.PreviewLoader != nil && s.previewToken != 0 {
		s.PreviewLoader.Cancel(s.previewToken)
	}
	s.Preview = nil
	s.PreviewData = nil
}

func (s *BrowserState) applyPreviewResult(a PreviewLoadResultAction) {
	if s.Preview == nil || a.Token != s.previewToken || a.Path != s.Preview.Path {
		return
	}
	s.PreviewData = a.Preview
}

func statSelection(path string) *SelectionInfo {
	info, err := os.Lstat(path)
	if err != nil {
		return nil
	}
	return &SelectionInfo{Path: path, Mode: info.Mode(), Modified: info.ModTime()}
}
