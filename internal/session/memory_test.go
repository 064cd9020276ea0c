package session

import (
	"context"
	"testing"
	"time"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemoryStore(time.Hour)
	ctx := context.Background()

	s := &model.SessionState{
		State:     model.StateRegistered,
		Identity:  model.RespondentIdentity{Name: "Ana", Institution: "Liceo Sur"},
		StartedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := st.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.Token == "" {
		t.Fatal("create must assign a token")
	}

	got, err := st.Get(ctx, s.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Identity.Name != "Ana" || got.State != model.StateRegistered {
		t.Fatalf("got %+v", got)
	}
}

func TestMemoryStoreGetReturnsIndependentCopy(t *testing.T) {
	st := NewMemoryStore(time.Hour)
	ctx := context.Background()

	s := &model.SessionState{State: model.StateRegistered}
	if err := st.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, _ := st.Get(ctx, s.Token)
	first.Identity.Name = "mutated"

	second, _ := st.Get(ctx, s.Token)
	if second.Identity.Name != "" {
		t.Fatal("mutation of one read leaked into the store")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	st := NewMemoryStore(time.Minute)
	ctx := context.Background()

	s := &model.SessionState{State: model.StateRegistered}
	if err := st.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Move the clock past the TTL.
	st.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	if _, err := st.Get(ctx, s.Token); err != ErrNotFound {
		t.Fatalf("expired get: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	st := NewMemoryStore(time.Hour)
	if _, err := st.Get(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := st.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("delete absent token: %v", err)
	}
}

func TestMemoryStoreSaveOverwrites(t *testing.T) {
	st := NewMemoryStore(time.Hour)
	ctx := context.Background()

	s := &model.SessionState{State: model.StateRegistered}
	if err := st.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	s.State = model.StateInterestsScored
	s.Interests = model.InterestScore{"R": 7, "I": 5, "A": 1, "S": 2, "E": 0, "C": 0}
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, _ := st.Get(ctx, s.Token)
	if got.State != model.StateInterestsScored || got.Interests["R"] != 7 {
		t.Fatalf("got %+v", got)
	}
}
