package store

import (
	"testing"
	"time"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		name string
		text string
		ok   bool
	}{
		{"plain", "buy milk", true},
		{"padded", "  call mom ", true},
		{"empty", "", false},
		{"spaces", "   ", false},
		{"tabs and newlines", "\t\n ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			it, ok := s.Add(tc.text)
			if ok != tc.ok {
				t.Fatalf("Add(%q) ok = %v, want %v", tc.text, ok, tc.ok)
			}
			if !ok {
				if s.Len() != 0 {
					t.Fatalf("rejected add changed store: len=%d", s.Len())
				}
				return
			}
			if s.Len() != 1 {
				t.Fatalf("expected 1 item, got %d", s.Len())
			}
			if it.Text != tc.text || it.OriginalText != tc.text {
				t.Fatalf("unexpected texts: %+v", it)
			}
		})
	}
}

func TestAddAssignsUniqueIncreasingIDs(t *testing.T) {
	s := New()
	var prev int64
	for i := 0; i < 50; i++ {
		it, ok := s.Add("x")
		if !ok {
			t.Fatalf("add %d rejected", i)
		}
		if it.ID <= prev {
			t.Fatalf("id %d not greater than previous %d", it.ID, prev)
		}
		prev = it.ID
	}
}

func TestAddStampsCreatedAt(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return at }))
	it, _ := s.Add("x")
	if !it.CreatedAt.Equal(at) {
		t.Fatalf("CreatedAt = %v, want %v", it.CreatedAt, at)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	a, _ := s.Add("a")
	b, _ := s.Add("b")
	c, _ := s.Add("c")

	if !s.Delete(b.ID) {
		t.Fatalf("delete of present id reported false")
	}
	items := s.Items()
	if len(items) != 2 || items[0].ID != a.ID || items[1].ID != c.ID {
		t.Fatalf("unexpected items after delete: %+v", items)
	}

	if s.Delete(b.ID) {
		t.Fatalf("second delete reported true")
	}
	if s.Delete(9999) {
		t.Fatalf("delete of unknown id reported true")
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
}

func TestApplyEditKeepsOriginal(t *testing.T) {
	s := New()
	it, _ := s.Add("buy milk")
	if !s.ApplyEdit(it.ID, "buy milk and eggs") {
		t.Fatalf("ApplyEdit reported false")
	}
	got, ok := s.Get(it.ID)
	if !ok {
		t.Fatalf("item vanished")
	}
	if got.Text != "buy milk and eggs" || got.OriginalText != "buy milk" {
		t.Fatalf("unexpected item: %+v", got)
	}
	if s.ApplyEdit(12345, "nope") {
		t.Fatalf("ApplyEdit on unknown id reported true")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	s := New()
	it, _ := s.Add("a")
	items := s.Items()
	items[0].Text = "mutated"
	got, _ := s.Get(it.ID)
	if got.Text != "a" {
		t.Fatalf("store mutated through Items(): %q", got.Text)
	}
}

func TestClockIDsStayUniqueWithinTick(t *testing.T) {
	tick := time.UnixMilli(1_700_000_000_000)
	c := &Clock{Now: func() time.Time { return tick }}
	a, b, d := c.Next(), c.Next(), c.Next()
	if a != tick.UnixMilli() || b != a+1 || d != b+1 {
		t.Fatalf("unexpected ids: %d %d %d", a, b, d)
	}
}

func TestWithIDSource(t *testing.T) {
	tick := time.UnixMilli(42)
	s := New(WithIDSource(&Clock{Now: func() time.Time { return tick }}))
	a, _ := s.Add("a")
	b, _ := s.Add("b")
	if a.ID != 42 || b.ID != 43 {
		t.Fatalf("unexpected ids: %d %d", a.ID, b.ID)
	}
}
