package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"My  Photo ":       "my-photo",
		"mandrill":         "mandrill",
		"  Hello World  ":  "hello-world",
		"-dash-":           "dash",
		"--a b--":          "a-b",
		"Tab\tSeparated":   "tab-separated",
		"already-normal":   "already-normal",
		"":                 "",
		"UPPER   CASE  X ": "upper-case-x",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "my-photo.pgf", OutputName("/tmp/pictures/My  Photo .png"))
	assert.Equal(t, "mandrill.pgf", OutputName("example/mandrill.png"))
	assert.Equal(t, "archive.tar.pgf", OutputName("Archive.tar.gz"))
	assert.Equal(t, "noext.pgf", OutputName("noext"))
	assert.Equal(t, "my-photo", Namespace("My  Photo .jpg"))
}
