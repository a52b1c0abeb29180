package article

import (
	"slices"
	"strings"
	"testing"
)

func TestArticleString(t *testing.T) {
	a, err := Load(strings.NewReader(sampleArticle))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	out := a.String()

	for _, want := range []string{
		`Article id="wod-1" style="crossfit" language="pt" rtl=false`,
		"  Canonical: https://example.com/wod",
		`  Title: "Very First WOD!"`,
		`  Author: "Éverton Rosário"`,
		"  Published: 2016-05-10T18:05:36Z",
		"    Image https://example.com/cover.jpg size: 800x454 sizing: default",
		"      Caption above extra-large",
		"Children: 9",
		"  unknown(hologram)",
		"    Ordered: true items: 2",
		"    Image https://example.com/2.jpg size: 0x0 sizing: viewport",
		"    Source: https://ads.example.com/slot",
		`  Credits: "Photos by staff"`,
		`  Copyright: "© 2016 Box"`,
		"Media: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump does not contain %q\n%s", want, out)
		}
	}

	var nilArticle *Article
	if nilArticle.String() != "<nil Article>" {
		t.Error("nil article dump")
	}
}

func TestMediaURLs(t *testing.T) {
	a := &Article{
		Header: Header{Cover: &Element{Kind: KindImage, Image: &Image{URL: "https://cdn/img10.jpg"}}},
		Children: []Element{
			{Kind: KindImage, Image: &Image{URL: "https://cdn/img2.jpg"}},
			{Kind: KindVideo, Video: &Video{URL: "https://cdn/clip.mp4", Poster: "https://cdn/img10.jpg"}},
			{Kind: KindSlideshow, Slideshow: &Slideshow{Images: []Image{{URL: "https://cdn/img1.jpg"}, {URL: " "}}}},
			{Kind: KindAudio, Audio: &Audio{URL: "https://cdn/track.mp3"}},
		},
	}
	want := []string{"https://cdn/clip.mp4", "https://cdn/img1.jpg", "https://cdn/img2.jpg", "https://cdn/img10.jpg", "https://cdn/track.mp3"}
	if got := a.MediaURLs(); !slices.Equal(got, want) {
		t.Errorf("MediaURLs() = %q, want %q", got, want)
	}
}
