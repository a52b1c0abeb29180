package article

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	yaml "gopkg.in/yaml.v3"
)

// Load decodes article from YAML (or JSON, which is a subset). Articles
// without ID get a fresh time ordered UUID.
func Load(r io.Reader) (*Article, error) {
	var a Article
	if err := yaml.NewDecoder(r).Decode(&a); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty article")
		}
		return nil, fmt.Errorf("unable to decode article: %w", err)
	}
	if a.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("unable to generate article id: %w", err)
		}
		a.ID = id.String()
	}
	return &a, nil
}

// LoadFile reads article from file.
func LoadFile(path string) (*Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// UnmarshalYAML accepts either plain string or list of segments, each
// segment is a string or single key mapping (text, bold, italic,
// underline, link, br).
func (rt *RichText) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*rt = nil
			return nil
		}
		*rt = Text(node.Value)
		return nil
	case yaml.SequenceNode:
		segs := make(RichText, 0, len(node.Content))
		for _, n := range node.Content {
			seg, err := decodeInline(n)
			if err != nil {
				return err
			}
			segs = append(segs, seg)
		}
		*rt = segs
		return nil
	}
	return fmt.Errorf("line %d: rich text must be a string or a list", node.Line)
}

func decodeInline(node *yaml.Node) (Inline, error) {
	if node.Kind == yaml.ScalarNode {
		return Inline{Kind: InlineText, Text: node.Value}, nil
	}
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return Inline{}, fmt.Errorf("line %d: text segment must be a string or a single key mapping", node.Line)
	}

	key, value := node.Content[0].Value, node.Content[1]
	var (
		seg      Inline
		children RichText
	)
	switch key {
	case "text":
		return Inline{Kind: InlineText, Text: value.Value}, nil
	case "br":
		return Inline{Kind: InlineBreak}, nil
	case "bold":
		seg.Kind = InlineBold
	case "italic":
		seg.Kind = InlineItalic
	case "underline":
		seg.Kind = InlineUnderline
	case "link":
		seg.Kind = InlineLink
		if value.Kind == yaml.ScalarNode {
			seg.Href = value.Value
			seg.Children = Text(value.Value)
			return seg, nil
		}
		var link struct {
			Href string   `yaml:"href"`
			Text RichText `yaml:"text"`
		}
		if err := value.Decode(&link); err != nil {
			return Inline{}, err
		}
		seg.Href = link.Href
		seg.Children = link.Text
		if len(seg.Children) == 0 {
			seg.Children = Text(link.Href)
		}
		return seg, nil
	default:
		return Inline{}, fmt.Errorf("line %d: unknown text segment %q", node.Line, key)
	}
	if err := value.Decode(&children); err != nil {
		return Inline{}, err
	}
	seg.Children = children
	return seg, nil
}

// UnmarshalYAML dispatches on "type" key. Unknown types are preserved with
// KindUnknown so converter may skip them.
func (e *Element) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}
	if head.Type == "" {
		return fmt.Errorf("line %d: element without type", node.Line)
	}

	kind, err := ParseKind(head.Type)
	if errors.Is(err, ErrInvalidKind) || kind == KindUnknown {
		*e = Element{Kind: KindUnknown, Type: head.Type}
		return nil
	}
	*e = Element{Kind: kind, Type: head.Type}

	switch kind {
	case KindParagraph, KindH1, KindH2, KindBlockquote:
		var v struct {
			Text RichText `yaml:"text"`
		}
		err = node.Decode(&v)
		e.Text = &v.Text
	case KindList:
		e.List = &List{}
		err = node.Decode(e.List)
	case KindPullquote:
		e.Pullquote = &Pullquote{}
		err = node.Decode(e.Pullquote)
	case KindImage, KindAnimatedImage:
		e.Image = &Image{}
		err = node.Decode(e.Image)
	case KindVideo:
		e.Video = &Video{}
		err = node.Decode(e.Video)
	case KindAudio:
		e.Audio = &Audio{}
		err = node.Decode(e.Audio)
	case KindSlideshow:
		e.Slideshow = &Slideshow{}
		err = node.Decode(e.Slideshow)
	case KindInteractive, KindSocialEmbed, KindAnalytics, KindAd:
		e.Embed = &Embed{}
		err = node.Decode(e.Embed)
	case KindMap:
		e.Map, err = decodeMap(node)
	case KindRelatedArticles:
		e.Related = &Related{}
		err = node.Decode(e.Related)
	}
	if err != nil {
		return fmt.Errorf("line %d: %s: %w", node.Line, head.Type, err)
	}
	return nil
}

// decodeMap accepts geotag as JSON text or as inline YAML structure.
func decodeMap(node *yaml.Node) (*Map, error) {
	var v struct {
		Geotag  yaml.Node `yaml:"geotag"`
		Caption *Caption  `yaml:"caption"`
	}
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	m := &Map{Caption: v.Caption}
	switch v.Geotag.Kind {
	case 0:
	case yaml.ScalarNode:
		m.Geotag = v.Geotag.Value
	default:
		var raw any
		if err := v.Geotag.Decode(&raw); err != nil {
			return nil, err
		}
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, err
		}
		m.Geotag = string(data)
	}
	return m, nil
}

// UnmarshalYAML accepts credits as a single string or list of paragraphs.
func (f *Footer) UnmarshalYAML(node *yaml.Node) error {
	var v struct {
		Credits   yaml.Node `yaml:"credits"`
		Copyright RichText  `yaml:"copyright"`
	}
	if err := node.Decode(&v); err != nil {
		return err
	}
	*f = Footer{Copyright: v.Copyright}
	switch v.Credits.Kind {
	case 0:
	case yaml.ScalarNode:
		f.CreditsText = v.Credits.Value
	default:
		if err := v.Credits.Decode(&f.Credits); err != nil {
			return err
		}
	}
	return nil
}
