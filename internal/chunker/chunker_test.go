package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplit_NoNewlines(t *testing.T) {
	text := strings.Repeat("a", 7000)

	chunks := Split(text, 3000)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	wantLens := []int{3000, 3000, 1000}
	for i, c := range chunks {
		if len(c) != wantLens[i] {
			t.Errorf("chunk %d: expected length %d, got %d", i, wantLens[i], len(c))
		}
	}
	if strings.Join(chunks, "") != text {
		t.Error("chunks do not concatenate back to the input")
	}
}

func TestSplit_BreaksAtNewlines(t *testing.T) {
	line := strings.Repeat("x", 99) + "\n"
	text := strings.Repeat(line, 75) // 7500 runes

	chunks := Split(text, 3000)

	if strings.Join(chunks, "") != text {
		t.Fatal("chunks do not concatenate back to the input")
	}
	for i, c := range chunks {
		if utf8.RuneCountInString(c) > 3000 {
			t.Errorf("chunk %d exceeds limit: %d", i, utf8.RuneCountInString(c))
		}
		if !strings.HasSuffix(c, "\n") {
			t.Errorf("chunk %d does not end at a line boundary", i)
		}
	}
	if len(chunks) != 3 || len(chunks[0]) != 3000 || len(chunks[1]) != 3000 || len(chunks[2]) != 1500 {
		t.Errorf("unexpected chunk sizes: %d chunks", len(chunks))
	}
}

func TestSplit_NewlineNearestToLimit(t *testing.T) {
	text := strings.Repeat("a", 50) + "\n" + strings.Repeat("b", 30) + "\n" + strings.Repeat("c", 40)

	chunks := Split(text, 100)

	want := []string{
		strings.Repeat("a", 50) + "\n" + strings.Repeat("b", 30) + "\n",
		strings.Repeat("c", 40),
	}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d: %q", len(want), len(chunks), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestSplit_LongLineIsCutAtLimit(t *testing.T) {
	text := "short\n" + strings.Repeat("z", 250)

	chunks := Split(text, 100)

	want := []string{"short\n", strings.Repeat("z", 100), strings.Repeat("z", 100), strings.Repeat("z", 50)}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d", len(want), len(chunks))
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestSplit_ShortInputIsOneChunk(t *testing.T) {
	for _, text := range []string{"hello", "line one\nline two\n", strings.Repeat("q", 3000)} {
		chunks := Split(text, 3000)
		if len(chunks) != 1 || chunks[0] != text {
			t.Errorf("Split(%d runes) = %d chunks, want exactly the input", utf8.RuneCountInString(text), len(chunks))
		}
	}
}

func TestSplit_EmptyAndUnlimited(t *testing.T) {
	if chunks := Split("", 10); len(chunks) != 0 {
		t.Errorf("expected no chunks for empty input, got %d", len(chunks))
	}
	text := strings.Repeat("w", 50)
	if chunks := Split(text, 0); len(chunks) != 1 || chunks[0] != text {
		t.Errorf("expected a single chunk with limit 0, got %d", len(chunks))
	}
}

func TestSplit_CountsRunes(t *testing.T) {
	text := strings.Repeat("é", 10)

	chunks := Split(text, 4)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if !utf8.ValidString(c) {
			t.Errorf("chunk %d is not valid UTF-8", i)
		}
	}
	if strings.Join(chunks, "") != text {
		t.Error("chunks do not concatenate back to the input")
	}
}

func TestChunks_StopsEarly(t *testing.T) {
	text := strings.Repeat("a", 1000)
	count := 0
	for range Chunks(text, 10) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("expected iteration to stop after 3 chunks, got %d", count)
	}
}
