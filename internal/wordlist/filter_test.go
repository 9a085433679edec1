package wordlist

import "testing"

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("en")
	if !filter("hello") {
		t.Fatalf("expected hello to pass english filter")
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	words := Filter([]string{"one", "döner", "two"}, FilterForLang("en"))
	if len(words) != 2 || words[0] != "one" || words[1] != "two" {
		t.Fatalf("unexpected filtered words: %v", words)
	}
}
