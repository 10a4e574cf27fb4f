package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type funcSource struct {
	calls atomic.Int32
	load  func(ctx context.Context, call int) (Datasets, error)
}

func (s *funcSource) Name() string { return "func" }

func (s *funcSource) Load(ctx context.Context) (Datasets, error) {
	n := int(s.calls.Add(1))
	return s.load(ctx, n)
}

func TestStore_NotLoaded(t *testing.T) {
	s := NewStore(EmbeddedSource{}, 0)
	if _, err := s.Current(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Current() error = %v, want ErrNotLoaded", err)
	}
}

func TestStore_Refresh(t *testing.T) {
	s := NewStore(EmbeddedSource{}, time.Second)

	snap, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	cur, err := s.Current()
	if err != nil || cur != snap {
		t.Fatalf("Current() = %v, %v", cur, err)
	}
	if cur.Source != "embedded" || len(cur.Categories) == 0 {
		t.Errorf("snapshot = %s with %d categories", cur.Source, len(cur.Categories))
	}
	if s.LastError() != nil {
		t.Errorf("LastError() = %v", s.LastError())
	}
}

func TestStore_FailedRefreshKeepsPrevious(t *testing.T) {
	src := &funcSource{load: func(_ context.Context, call int) (Datasets, error) {
		switch call {
		case 1:
			return validDatasets(), nil
		case 2:
			return Datasets{}, errors.New("source down")
		default:
			d := validDatasets()
			d.Users = append(d.Users, d.Users[0])
			return d, nil
		}
	}}
	s := NewStore(src, time.Second)

	first, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("first Refresh: %v", err)
	}

	if _, err := s.Refresh(context.Background()); err == nil {
		t.Fatal("second Refresh should fail")
	}
	if cur, _ := s.Current(); cur != first {
		t.Error("load failure replaced the snapshot")
	}
	if s.LastError() == nil {
		t.Error("LastError() = nil after failure")
	}

	_, err = s.Refresh(context.Background())
	if !errors.Is(err, ErrInvalidDataset) {
		t.Fatalf("third Refresh error = %v, want ErrInvalidDataset", err)
	}
	if cur, _ := s.Current(); cur != first {
		t.Error("validation failure replaced the snapshot")
	}
}

func TestStore_LoadTimeout(t *testing.T) {
	src := &funcSource{load: func(ctx context.Context, _ int) (Datasets, error) {
		<-ctx.Done()
		return Datasets{}, ctx.Err()
	}}
	s := NewStore(src, 10*time.Millisecond)

	_, err := s.Refresh(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want deadline exceeded", err)
	}
}

func TestStore_StartRefresher(t *testing.T) {
	src := &funcSource{load: func(context.Context, int) (Datasets, error) {
		return validDatasets(), nil
	}}
	s := NewStore(src, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.StartRefresher(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for src.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("refresher did not tick")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresher did not stop after cancel")
	}
	if _, err := s.Current(); err != nil {
		t.Errorf("Current() after refresher: %v", err)
	}
}

func TestStore_StartRefresherDisabled(t *testing.T) {
	s := NewStore(EmbeddedSource{}, 0)
	s.StartRefresher(context.Background(), 0) // returns immediately
}
