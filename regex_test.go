package repike

import "testing"

func TestCompileAndMatch(t *testing.T) {
	re := MustCompile(`a(b+)c`)
	if !re.Match([]byte("xxabbbcxx")) {
		t.Fatal("expected match")
	}
	if got := re.FindString("xxabbbcxx"); got != "abbbc" {
		t.Fatalf("FindString = %q, want %q", got, "abbbc")
	}
}

func TestFindSubmatch(t *testing.T) {
	re := MustCompile(`(\w+)@(\w+)`)
	got := re.FindStringSubmatch("user@example and more")
	if got == nil {
		t.Fatal("expected a match")
	}
	want := []string{"user@example", "user", "example"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("group %d = %q, want %q", i, got[i], w)
		}
	}
}

func TestFindAllString(t *testing.T) {
	re := MustCompile(`\d+`)
	got := re.FindAllString("1 22 333", -1)
	want := []string{"1", "22", "333"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFindAllStringLimit(t *testing.T) {
	re := MustCompile(`\d`)
	got := re.FindAllString("1 2 3 4", 2)
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
}

func TestCompileError(t *testing.T) {
	_, err := Compile(`a(b`)
	if err == nil {
		t.Fatal("expected a compile error for an unclosed group")
	}
}

func TestMustCompilePanicsOnBadPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustCompile to panic on an invalid pattern")
		}
	}()
	MustCompile(`a{2,1}`)
}

func TestNumSubexp(t *testing.T) {
	re := MustCompile(`(a)(b)(c)`)
	if re.NumSubexp() != 3 {
		t.Fatalf("NumSubexp = %d, want 3", re.NumSubexp())
	}
}

func TestStringReturnsSource(t *testing.T) {
	re := MustCompile(`foo\d+`)
	if re.String() != `foo\d+` {
		t.Fatalf("String() = %q", re.String())
	}
}

func TestNoMatchReturnsNil(t *testing.T) {
	re := MustCompile(`xyz`)
	if re.Find([]byte("abc")) != nil {
		t.Error("expected nil Find result")
	}
	if re.FindSubmatch([]byte("abc")) != nil {
		t.Error("expected nil FindSubmatch result")
	}
}
