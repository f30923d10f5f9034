package strings_test

import (
	"testing"

	kstr "github.com/lumendata/govcat/pkg/utils/strings"
)

func TestTrimPefixAll(t *testing.T) {
	type when struct {
		s      string
		prefix string
	}

	for name, testcase := range map[string]struct {
		when when
		then string
	}{
		"when string has one prefix, it returns s without prefix": {
			when: when{
				s: "aaabbbccc", prefix: "aaab",
			},
			then: "bbccc",
		},
		"when string has repeated prefixes, it returns s without all prefix": {
			when: when{
				s: "aaabbbccc", prefix: "a",
			},
			then: "bbbccc",
		},
		"when string has same pattern with prefix in mid, it returns s without prefixes only": {
			when: when{
				s: "aaabbbaaacccaaa", prefix: "a",
			},
			then: "bbbaaacccaaa",
		},
		"when string has no prefix, it returns s without prefixes only": {
			when: when{
				s: "aaabbbaaacccaaa", prefix: "b",
			},
			then: "aaabbbaaacccaaa",
		},
	} {
		t.Run(name, func(t *testing.T) {
			actual := kstr.TrimPrefixAll(testcase.when.s, testcase.when.prefix)
			if actual != testcase.then {
				t.Errorf("wrong result: (actual, expected) = (%s, %s)", actual, testcase.then)
			}
		})
	}
}

func TestSupplySuffix(t *testing.T) {
	type when struct {
		text   string
		suffix string
	}
	type testcase struct {
		when when
		then string
	}
	for name, testcase := range map[string]testcase{
		"when text does not have suffix, it returns text + suffix": {
			when: when{
				text:   "foobar",
				suffix: "baz",
			},
			then: "foobarbaz",
		},
		"when text has suffix, it returns as input": {
			when: when{
				text:   "foobar",
				suffix: "ar",
			},
			then: "foobar",
		},
		"when text is empty, it returns suffix": {
			when: when{
				text:   "",
				suffix: "foo",
			},
			then: "foo",
		},
		"when suffix is empty, it retuns input text": {
			when: when{
				text:   "bar",
				suffix: "",
			},
			then: "bar",
		},
		"when text and suffix are empty, it returns empty": {
			when: when{
				text:   "",
				suffix: "",
			},
			then: "",
		},
	} {
		t.Run(name, func(t *testing.T) {
			actual := kstr.SuppySuffix(testcase.when.text, testcase.when.suffix)
			if actual != testcase.then {
				t.Errorf(
					`unexpected result: SupplySuffix("%s", "%s") --> %v`,
					testcase.when.text, testcase.when.suffix, actual,
				)
			}
		})
	}
}
