package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bigzano/noisekit/internal/logging"
	"github.com/bigzano/noisekit/internal/raster"
	"github.com/bigzano/noisekit/noise"
)

type frameRequest struct {
	gen uint64
	src noise.Source2
	win raster.Window
}

type frameMsg struct {
	gen     uint64
	grid    *raster.Grid
	summary raster.Summary
	took    time.Duration
	err     error
}

// frameSampler samples frames off the UI goroutine. Only the newest request
// is kept: a request that arrives while another is queued replaces it.
type frameSampler struct {
	mu      sync.Mutex
	pending *frameRequest
	wake    chan struct{}
	out     chan frameMsg
	pool    raster.Pool
	workers int
}

func newFrameSampler(workers int) *frameSampler {
	return &frameSampler{
		wake:    make(chan struct{}, 1),
		out:     make(chan frameMsg, 1),
		workers: workers,
	}
}

func (s *frameSampler) request(r frameRequest) {
	s.mu.Lock()
	s.pending = &r
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *frameSampler) take() (frameRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return frameRequest{}, false
	}
	r := *s.pending
	s.pending = nil
	return r, true
}

// run serves requests until ctx is done, then closes the output channel.
func (s *frameSampler) run(ctx context.Context) {
	defer close(s.out)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.wake:
		}

		r, ok := s.take()
		if !ok {
			continue
		}
		msg := s.sample(ctx, r)
		select {
		case s.out <- msg:
		case <-ctx.Done():
			s.recycle(msg.grid)
			return
		}
	}
}

func (s *frameSampler) sample(ctx context.Context, r frameRequest) (msg frameMsg) {
	msg.gen = r.gen
	defer func() {
		if p := recover(); p != nil {
			logging.LogPanic(p, "frame sampler")
			msg.grid = nil
			msg.err = fmt.Errorf("sampling panicked: %v", p)
		}
	}()

	start := time.Now()
	grid, err := s.pool.Sample(ctx, r.src, r.win, s.workers)
	if err != nil {
		msg.err = err
		return msg
	}
	msg.grid = grid
	msg.summary = raster.Summarize(grid)
	msg.took = time.Since(start)
	return msg
}

// recycle returns a frame grid once nothing displays it anymore.
func (s *frameSampler) recycle(g *raster.Grid) {
	s.pool.Put(g)
}
