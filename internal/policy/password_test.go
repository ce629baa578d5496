package policy

import "testing"

func TestValidatePasswordAccepts(t *testing.T) {
	if err := ValidatePassword("correct1!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidatePasswordRejectsTooShort(t *testing.T) {
	if err := ValidatePassword("a1!"); err == nil {
		t.Fatal("expected error for too-short password")
	}
}

func TestValidatePasswordRejectsTooLong(t *testing.T) {
	long := ""
	for i := 0; i < 130; i++ {
		long += "a"
	}
	if err := ValidatePassword(long + "1!"); err == nil {
		t.Fatal("expected error for too-long password")
	}
}

func TestValidatePasswordRequiresDigit(t *testing.T) {
	if err := ValidatePassword("nodigits!"); err == nil {
		t.Fatal("expected error for missing digit")
	}
}

func TestValidatePasswordRequiresPunctuation(t *testing.T) {
	if err := ValidatePassword("nopunct1here"); err == nil {
		t.Fatal("expected error for missing punctuation")
	}
}

func TestValidatePasswordRejectsSQLShapedInput(t *testing.T) {
	cases := []string{
		"a1! OR 1=1--",
		"a1! UNION SELECT",
		"a1! DROP TABLE;",
		"a1! 0xdeadbeef!",
	}
	for _, c := range cases {
		if err := ValidatePassword(c); err == nil {
			t.Fatalf("expected error for SQL-shaped password %q", c)
		}
	}
}
