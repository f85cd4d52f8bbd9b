package pass

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("qwerty")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "qwerty" {
		t.Fatal("hash must differ from password")
	}
	if !VerifyPassword(hash, "qwerty") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "qwerty1") {
		t.Error("wrong password accepted")
	}

	other, _ := HashPassword("qwerty")
	if other == hash {
		t.Error("hashes must be salted")
	}
}
