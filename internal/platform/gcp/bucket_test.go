package gcp

import (
	"testing"
)

func TestPublicURL(t *testing.T) {
	bs := &bucketService{bucketName: "photo-bucket"}

	got := bs.PublicURL("organizations/abc/photos/spots/s1/0.webp")
	want := "https://storage.googleapis.com/photo-bucket/organizations/abc/photos/spots/s1/0.webp"
	if got != want {
		t.Fatalf("PublicURL: want=%q got=%q", want, got)
	}
}

func TestPublicURLTrimsLeadingSlash(t *testing.T) {
	bs := &bucketService{bucketName: "photo-bucket"}

	got := bs.PublicURL("/organizations/abc/photos/halls/h1/2.webp")
	want := "https://storage.googleapis.com/photo-bucket/organizations/abc/photos/halls/h1/2.webp"
	if got != want {
		t.Fatalf("PublicURL: want=%q got=%q", want, got)
	}
}

func TestContentTypeForKey(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"organizations/o/photos/spots/s/0.webp", "image/webp"},
		{"photos/cover.PNG", "image/png"},
		{"photos/cover.jpeg", "image/jpeg"},
		{"photos/anim.gif", "image/gif"},
		{"photos/unknown.bin", ""},
	}
	for _, tc := range cases {
		if got := contentTypeForKey(tc.key); got != tc.want {
			t.Fatalf("contentTypeForKey(%q): want=%q got=%q", tc.key, tc.want, got)
		}
	}
}

func TestRequireClientOptionsFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS_JSON", "")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")

	if _, err := RequireClientOptionsFromEnv(); err == nil {
		t.Fatalf("RequireClientOptionsFromEnv: expected error with no credentials set")
	}

	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS_JSON", `{"type":"service_account"}`)
	opts, err := RequireClientOptionsFromEnv()
	if err != nil {
		t.Fatalf("RequireClientOptionsFromEnv: %v", err)
	}
	if len(opts) != 1 {
		t.Fatalf("RequireClientOptionsFromEnv: expected 1 option, got %d", len(opts))
	}
}
