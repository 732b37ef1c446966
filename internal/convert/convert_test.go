package convert

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"codeberg.org/snonux/kirlot/internal/translit"
)

type recordedEntry struct {
	dir            translit.Direction
	source, result string
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []recordedEntry
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, dir translit.Direction, source, result string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, recordedEntry{dir, source, result})
	return nil
}

func TestConvert(t *testing.T) {
	svc := NewService(nil)

	tests := []struct {
		name    string
		req     Request
		want    Result
		wantErr bool
	}{
		{
			name: "to latin",
			req:  Request{Text: "Ўзбекистон", Direction: translit.Latin},
			want: Result{Text: "O'zbekiston", Direction: translit.Latin, Words: 1},
		},
		{
			name: "to cyrillic",
			req:  Request{Text: "Yo'q, mashq", Direction: translit.Cyrillic},
			want: Result{Text: "Йўқ, машқ", Direction: translit.Cyrillic, Words: 2},
		},
		{
			name: "auto detects latin",
			req:  Request{Text: "ekran", Direction: translit.Auto},
			want: Result{Text: "экран", Direction: translit.Cyrillic, Words: 1},
		},
		{
			name: "empty direction means auto",
			req:  Request{Text: "бекат"},
			want: Result{Text: "bekat", Direction: translit.Latin, Words: 1},
		},
		{
			name: "control characters stripped first",
			req:  Request{Text: "sa\x00lom", Direction: translit.Cyrillic},
			want: Result{Text: "салом", Direction: translit.Cyrillic, Words: 1},
		},
		{
			name: "word limit",
			req:  Request{Text: "bir ikki uch", Direction: translit.Cyrillic, MaxWords: 2},
			want: Result{Text: "бир икки", Direction: translit.Cyrillic, Words: 2, Truncated: true},
		},
		{
			name: "whitespace only",
			req:  Request{Text: " \n\t ", Direction: translit.Latin},
			want: Result{Text: "", Direction: translit.Latin, Words: 0},
		},
		{
			name:    "invalid direction",
			req:     Request{Text: "salom", Direction: "greek"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Convert(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Convert() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, translit.ErrInvalidDirection) {
					t.Errorf("Convert() error = %v, want ErrInvalidDirection", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Convert() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConvertRecords(t *testing.T) {
	rec := &fakeRecorder{}
	svc := NewService(translit.New(), WithRecorder(rec))

	if _, err := svc.Convert(context.Background(), Request{Text: "салом", Direction: translit.Latin}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if _, err := svc.Convert(context.Background(), Request{Text: "   ", Direction: translit.Latin}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(rec.entries) != 1 {
		t.Fatalf("recorded %d entries, want 1", len(rec.entries))
	}
	want := recordedEntry{translit.Latin, "салом", "salom"}
	if rec.entries[0] != want {
		t.Errorf("recorded %+v, want %+v", rec.entries[0], want)
	}
}

func TestConvertRecorderFailureIgnored(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	svc := NewService(nil, WithRecorder(rec), WithLogger(nil))

	got, err := svc.Convert(context.Background(), Request{Text: "салом", Direction: translit.Latin})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got.Text != "salom" {
		t.Errorf("Convert() text = %q, want %q", got.Text, "salom")
	}
}

func TestConvertOutputNotCapped(t *testing.T) {
	svc := NewService(nil)

	// ш doubles in length; the output must not be cut at the input cap.
	input := strings.Repeat("ш", 5000)
	got, err := svc.Convert(context.Background(), Request{Text: input, Direction: translit.Latin})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got.Text != strings.Repeat("sh", 5000) {
		t.Errorf("Convert() returned %d bytes, want %d", len(got.Text), 10000)
	}
}
