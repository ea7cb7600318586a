package langtest

import "testing"

func TestRunTestSuite(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"scope is shared within a sequence", TestSequence{
			{"(def x 1)", "1"},
			{"(defn inc [n] (+ n 1))", "nil"},
			{"(inc x)", "2"},
		}},
		{"scope is isolated between sequences", TestSequence{
			{"(try x)", `{:error "unbound identifier: x"}`},
		}},
	})
}

func TestRunErrorSuite(t *testing.T) {
	RunErrorSuite(t, ErrorSuite{
		{"lex error", "#"},
		{"parse error", "(f"},
		{"transform error", "(let [x] x)"},
		{"eval error", "(/ 1 0)"},
	})
}
