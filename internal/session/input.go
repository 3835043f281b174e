package session

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/model"
)

// readChoice reads a menu number. Anything unparsable becomes 0, which no
// menu accepts.
func (s *Session) readChoice() (int, error) {
	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// readVariant reads a product-type choice. Anything ParseVariant rejects
// comes back as the zero Variant, which is not Valid.
func (s *Session) readVariant() (model.Variant, error) {
	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	v, err := model.ParseVariant(line)
	if err != nil {
		return 0, nil
	}
	return v, nil
}

// askYesNo repeats question until the answer is exactly Yes or No.
func (s *Session) askYesNo(question string) (bool, error) {
	for {
		s.printf("%s (Yes/No)\nYour answer: ", question)
		line, err := s.readLine()
		if err != nil {
			return false, err
		}
		switch line {
		case "Yes":
			return true, nil
		case "No":
			return false, nil
		}
		s.println("Invalid answer. Enter your answer again")
	}
}

// readInt re-prompts until valid accepts the parsed number.
func (s *Session) readInt(prompt string, valid func(int) error) (int, error) {
	s.printf("%s", prompt)
	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(line)
		if perr == nil && (valid == nil || valid(n) == nil) {
			return n, nil
		}
		s.println("Error. Enter again")
	}
}

// readDecimal re-prompts until the line parses as a non-negative decimal.
func (s *Session) readDecimal(prompt string) (decimal.Decimal, error) {
	s.printf("%s", prompt)
	for {
		line, err := s.readLine()
		if err != nil {
			return decimal.Zero, err
		}
		d, perr := decimal.NewFromString(line)
		if perr == nil && !d.IsNegative() {
			return d, nil
		}
		s.println("Error. Enter again")
	}
}

func nonNegative(n int) error {
	if n < 0 {
		return strconv.ErrRange
	}
	return nil
}
