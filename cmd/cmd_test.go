package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMultiSelectFlags(t *testing.T) {
	cmd := multiSelectCommand()
	err := cmd.ParseFlags([]string{
		"-m", "Pick", "-o", "a,b", "-o", "c", "--default", "0,2", "--index-prefix", "simple", "-vv",
	})
	if err != nil {
		t.Fatal(err)
	}
	flags := cmd.Flags()

	options, err := flags.GetStringArray("option")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(options, []string{"a,b", "c"}); diff != "" {
		t.Errorf("Options diff (-got +want)\n%s", diff)
	}

	def, err := flags.GetIntSlice("default")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(def, []int{0, 2}); diff != "" {
		t.Errorf("Default diff (-got +want)\n%s", diff)
	}

	if v, _ := flags.GetCount("v"); v != 2 {
		t.Errorf("Log level = %d, want 2", v)
	}
	if n, _ := flags.GetInt("page-size"); n != 7 {
		t.Errorf("Page size = %d, want 7", n)
	}
}

func TestTextFlags(t *testing.T) {
	cmd := textCommand()
	if err := cmd.ParseFlags([]string{"--message", "Name", "--required", "--placeholder", "Jane"}); err != nil {
		t.Fatal(err)
	}
	flags := cmd.Flags()

	if req, _ := flags.GetBool("required"); !req {
		t.Errorf("Required = false")
	}
	if p, _ := flags.GetString("placeholder"); p != "Jane" {
		t.Errorf("Placeholder = %q", p)
	}
}
