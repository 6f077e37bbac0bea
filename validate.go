package notation

// Result is the outcome of validating a token sequence against one notation.
type Result int

const (
	Valid Result = iota
	InsufficientOperand
	InsufficientOperator
	InvalidCharacter
	UnbalancedParentheses
	IllegalParenthesesInNotation
)

var resultNames = [...]string{
	Valid:                        "valid",
	InsufficientOperand:          "insufficient operand",
	InsufficientOperator:         "insufficient operator",
	InvalidCharacter:             "invalid character",
	UnbalancedParentheses:        "unbalanced parentheses",
	IllegalParenthesesInNotation: "illegal parentheses in notation",
}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return "unknown"
	}
	return resultNames[r]
}

// Err returns the sentinel error for r, or nil for Valid.
func (r Result) Err() error {
	switch r {
	case Valid:
		return nil
	case InsufficientOperand:
		return ErrInsufficientOperand
	case InsufficientOperator:
		return ErrInsufficientOperator
	case InvalidCharacter:
		return ErrInvalidCharacter
	case UnbalancedParentheses:
		return ErrUnbalancedParentheses
	case IllegalParenthesesInNotation:
		return ErrIllegalParentheses
	}
	return ErrMalformedTree
}

// Validate checks tokens against the grammar of f.
func Validate(tokens []Token, f Format) Result {
	switch f {
	case Prefix:
		return ValidatePrefix(tokens)
	case Postfix:
		return ValidatePostfix(tokens)
	}
	return ValidateInfix(tokens)
}

// IsValid tokenizes expr and validates it against f.
func IsValid(expr string, f Format) Result {
	return Validate(Tokenize(expr), f)
}

// ValidateInfix scans left to right tracking parenthesis depth and whether an
// operand is due next. Faults that do not end the scan are ranked at the end:
// unbalanced parentheses, then a missing operand, then a missing operator.
func ValidateInfix(tokens []Token) Result {
	balance := 0
	expectOperand := true
	missingOperand := false
	missingOperator := false

	for _, t := range tokens {
		switch t.Kind {
		case KindLParen:
			if !expectOperand {
				missingOperator = true
			}
			expectOperand = true
			balance++
		case KindRParen:
			balance--
			if balance < 0 {
				return UnbalancedParentheses
			}
			if expectOperand {
				missingOperand = true
			}
		case KindOperand:
			if !expectOperand {
				missingOperator = true
			}
			expectOperand = false
		case KindOperator:
			if expectOperand {
				missingOperand = true
			}
			expectOperand = true
		default:
			return InvalidCharacter
		}
	}

	switch {
	case balance != 0:
		return UnbalancedParentheses
	case missingOperand || expectOperand:
		return InsufficientOperand
	case missingOperator:
		return InsufficientOperator
	}
	return Valid
}

// ValidatePostfix reduces left to right: every operator consumes two pending
// operands and leaves one.
func ValidatePostfix(tokens []Token) Result {
	return validateReduction(len(tokens), func(i int) Token { return tokens[i] })
}

// ValidatePrefix applies the postfix reduction rule scanning right to left.
func ValidatePrefix(tokens []Token) Result {
	n := len(tokens)
	return validateReduction(n, func(i int) Token { return tokens[n-1-i] })
}

func validateReduction(n int, at func(i int) Token) Result {
	operands := 0
	operators := 0
	pending := 0

	for i := 0; i < n; i++ {
		t := at(i)
		switch t.Kind {
		case KindOperand:
			operands++
			pending++
		case KindOperator:
			if pending < 2 {
				return InsufficientOperand
			}
			operators++
			pending--
		case KindLParen, KindRParen:
			return IllegalParenthesesInNotation
		default:
			return InvalidCharacter
		}
	}

	switch {
	case pending == 1 && operands == operators+1:
		return Valid
	case pending < 1:
		return InsufficientOperand
	}
	return InsufficientOperator
}

// Detect reports the first format other than exclude under which tokens are
// valid. Formats are tried in declaration order.
func Detect(tokens []Token, exclude Format) (Format, bool) {
	for _, f := range Formats() {
		if f == exclude {
			continue
		}
		if Validate(tokens, f) == Valid {
			return f, true
		}
	}
	return exclude, false
}
