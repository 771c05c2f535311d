package session

import "testing"

func TestPageCycle(t *testing.T) {
	p := PageProxy
	seen := map[Page]bool{}
	for i := 0; i < 8; i++ {
		seen[p] = true
		if p.Index() < 0 || p.Index() >= pageCount {
			t.Fatalf("page out of range: %d", p.Index())
		}
		p = p.Next()
	}
	if len(seen) != pageCount {
		t.Fatalf("cycle did not visit all pages: %d", len(seen))
	}
	if p != PageProxy {
		t.Fatalf("two full cycles should return to start, got %s", p.Title())
	}
}

func TestPageNextPrevInverse(t *testing.T) {
	for i := 0; i < pageCount; i++ {
		p := PageFromIndex(i)
		if p.Next().Prev() != p {
			t.Fatalf("next/prev not inverse for %s", p.Title())
		}
		if p.Prev().Next() != p {
			t.Fatalf("prev/next not inverse for %s", p.Title())
		}
	}
}

func TestPageFromIndexWraps(t *testing.T) {
	if PageFromIndex(5) != PageLog {
		t.Fatalf("index 5 should wrap to Log")
	}
	if PageConfig.Next() != PageProxy {
		t.Fatalf("Config.Next should wrap to Proxy")
	}
	if PageProxy.Prev() != PageConfig {
		t.Fatalf("Proxy.Prev should wrap to Config")
	}
}

func TestPageTitles(t *testing.T) {
	want := []string{"Proxy", "Log", "Settings", "Config"}
	for i, w := range want {
		if got := PageFromIndex(i).Title(); got != w {
			t.Fatalf("title %d: got %s want %s", i, got, w)
		}
	}
}
