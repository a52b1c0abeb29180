package amp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"ia2amp/article"
	"ia2amp/hooks"
	"ia2amp/media"
)

const mapsEmbedURL = "https://www.google.com/maps/embed/v1/place"

var errNoCoordinates = errors.New("no point coordinates")

// ampIframe builds detached amp-iframe. Incomplete size is resolved for src,
// default box is used when there is no src.
func (rc *RenderContext) ampIframe(ctx context.Context, src string, w, h int, layout string) *etree.Element {
	switch {
	case w > 0 && h > 0:
	case strings.TrimSpace(src) != "":
		w, h = rc.dimensions(ctx, strings.TrimSpace(src), w, h, media.KindEmbed)
	default:
		box := rc.resolver.Default()
		w, h = box.Width, box.Height
	}
	el := etree.NewElement("amp-iframe")
	setSize(el, w, h, layout)
	el.CreateAttr("frameborder", "0")
	return el
}

// embed renders interactive and social embeds. Source URL becomes
// amp-iframe, raw markup is imported untouched.
func (rc *RenderContext) embed(ctx context.Context, parent *etree.Element, e *article.Element) *etree.Element {
	em := e.Embed
	switch {
	case em == nil:
	case strings.TrimSpace(em.Source) != "":
		el := rc.ampIframe(ctx, em.Source, em.Width, em.Height, "responsive")
		el.CreateAttr("src", rc.secure(em.Source, e.Kind.String(), e))
		el.CreateAttr("sandbox", "allow-scripts allow-same-origin")
		if el = rc.filter(hooks.Iframe, el); el == nil {
			return nil
		}
		rc.use(featureIframe)
		return rc.place(parent, el, em.Caption)
	case strings.TrimSpace(em.HTML) != "":
		div := parent.CreateElement("div")
		if err := importMarkup(div, em.HTML); err != nil {
			rc.warn("unable to import embedded markup", e, err)
		}
		return div
	}
	rc.warn(e.Kind.String()+" without source or markup skipped", e, nil)
	return nil
}

func (rc *RenderContext) ad(ctx context.Context, parent *etree.Element, em *article.Embed) *etree.Element {
	if em == nil || (strings.TrimSpace(em.Source) == "" && strings.TrimSpace(em.HTML) == "") {
		rc.warn("ad without source or markup skipped", em, nil)
		return nil
	}
	el := rc.ampIframe(ctx, em.Source, em.Width, em.Height, "fixed")
	if strings.TrimSpace(em.Source) != "" {
		el.CreateAttr("src", rc.secure(em.Source, "ad", em))
		el.CreateAttr("sandbox", "allow-scripts allow-same-origin")
	} else {
		el.CreateAttr("srcdoc", em.HTML)
		el.CreateAttr("sandbox", "allow-scripts")
	}
	if el = rc.filter(hooks.Ad, el); el == nil {
		return nil
	}
	rc.use(featureIframe)
	parent.AddChild(el)
	return el
}

// geoMap renders Google Maps embed. Problems leave an empty placeholder.
func (rc *RenderContext) geoMap(ctx context.Context, parent *etree.Element, m *article.Map) *etree.Element {
	if m == nil || strings.TrimSpace(m.Geotag) == "" {
		rc.warn("map has no geotag", m, nil)
		return parent.CreateElement("div")
	}
	lon, lat, err := coordinates(m.Geotag)
	if err != nil {
		rc.warn("map has invalid geotag", m, err)
		return parent.CreateElement("div")
	}
	key := hooks.Apply(rc.hooks, hooks.MapsAPIKey, rc.cfg.MapsAPIKey.Reveal())
	if strings.TrimSpace(key) == "" {
		rc.warn("map requires Google Maps API key which is not configured", m, nil)
		return parent.CreateElement("div")
	}

	q := url.Values{}
	q.Set("key", key)
	q.Set("q", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lon, 'f', -1, 64))

	el := rc.ampIframe(ctx, "", 0, 0, "responsive")
	el.CreateAttr("src", mapsEmbedURL+"?"+q.Encode())
	el.CreateAttr("sandbox", "allow-scripts allow-same-origin")
	if el = rc.filter(hooks.Map, el); el == nil {
		return nil
	}
	rc.use(featureIframe)
	return rc.place(parent, el, m.Caption)
}

type geoGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type geoObject struct {
	Type     string       `json:"type"`
	Geometry *geoGeometry `json:"geometry"`
	Features []geoObject  `json:"features"`
}

// coordinates extracts [longitude, latitude] of the first point of GeoJSON
// Feature or FeatureCollection.
func coordinates(geotag string) (lon, lat float64, err error) {
	var obj geoObject
	if err := json.Unmarshal([]byte(geotag), &obj); err != nil {
		return 0, 0, fmt.Errorf("unable to parse geotag: %w", err)
	}

	var geometry *geoGeometry
	switch obj.Type {
	case "Feature":
		geometry = obj.Geometry
	case "FeatureCollection":
		for _, f := range obj.Features {
			if f.Geometry != nil && len(f.Geometry.Coordinates) >= 2 {
				geometry = f.Geometry
				break
			}
		}
	default:
		return 0, 0, fmt.Errorf("unsupported geotag type %q", obj.Type)
	}
	if geometry == nil || len(geometry.Coordinates) < 2 {
		return 0, 0, errNoCoordinates
	}
	return geometry.Coordinates[0], geometry.Coordinates[1], nil
}
