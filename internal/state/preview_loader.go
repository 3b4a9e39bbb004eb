package state

import (
	"context"
	"sync"
)

// PreviewLoader performs preview generation asynchronously.
type PreviewLoader interface {
	Start(req PreviewLoadRequest)
	Cancel(token int)
}

// PreviewLoadRequest describes the preview to build.
type PreviewLoadRequest struct {
	Token    int
	Request  PreviewRequest
	Callback func(PreviewLoadResult)
}

// PreviewLoadResult carries the generated preview.
type PreviewLoadResult struct {
	Token int
	Path  string
	Data  *PreviewData
}

// NewAsyncPreviewLoader constructs the default goroutine-based preview loader.
func NewAsyncPreviewLoader() PreviewLoader {
	return &asyncPreviewLoader{
		jobs: make(map[int]context.CancelFunc),
	}
}

type asyncPreviewLoader struct {
	mu   sync.Mutex
	jobs map[int]context.CancelFunc
}

func (l *asyncPreviewLoader) Start(req PreviewLoadRequest) {
	if req.Token == 0 || req.Request.Path == "" || req.Callback == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.mu.Lock()
	l.jobs[req.Token] = cancel
	l.mu.Unlock()

	go func() {
		defer func() {
			l.mu.Lock()
			delete(l.jobs, req.Token)
			l.mu.Unlock()
		}()

		data := BuildPreview(req.Request)

		select {
		case <-ctx.Done():
			return
		default:
		}

		req.Callback(PreviewLoadResult{
			Token: req.Token,
			Path:  req.Request.Path,
			Data:  data,
		})
	}()
}

func (l *asyncPreviewLoader) Cancel(token int) {
	l.mu.Lock()
	if cancel, ok := l.jobs[token]; ok {
		cancel()
		delete(l.jobs, token)
	}
	l.mu.Unlock()
}
