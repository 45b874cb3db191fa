package snapshot

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/rickgao/mdexport/internal/bucket"
)

// Structure type tags carried by <Undly PxStrctTyp>.
const (
	TagSpot          = "EQ_SPOT"
	TagLiquidity     = "EQ_LIQUIDITY"
	TagDividends     = "EQ_DIVIDENDS"
	TagORCParams     = "EQ_ORC_PARAMS"
	TagATMVol        = "EQ_ATM_VOL"
	TagDividendYield = "EQ_DIVIDENDS_YIELD"
)

// Document is a parsed core snapshot.
type Document struct {
	XMLName  xml.Name `xml:"Mkt"`
	Points   []Point  `xml:"Pnt"`
	Matrices []Block  `xml:"Mtrx"`
	Curves   []Block  `xml:"Curve"`
}

// Underlying carries a block's type tag.
type Underlying struct {
	StructureType string `xml:"PxStrctTyp,attr"`
}

// Measure is a single <Msr> element.
type Measure struct {
	Row string `xml:"Row,attr"`
	Col string `xml:"Col,attr"`
	Val string `xml:"Val,attr"`
}

// Point is a flat single-value measurement.
type Point struct {
	Underlying Underlying `xml:"Undly"`
	Measure    Measure    `xml:"Msr"`
}

// Block is a matrix or curve measurement block.
type Block struct {
	Underlying Underlying `xml:"Undly"`
	Measures   []Measure  `xml:"Msr"`
}

// Tag returns the block's structure type.
func (b Block) Tag() string {
	return b.Underlying.StructureType
}

// Tuples returns the block's measurements in document order.
func (b Block) Tuples() []bucket.Tuple {
	tuples := make([]bucket.Tuple, len(b.Measures))
	for i, m := range b.Measures {
		tuples[i] = bucket.Tuple{Row: m.Row, Column: m.Col, Value: m.Val}
	}
	return tuples
}

// Point returns the last point tagged tag. Later points win, matching a
// top-to-bottom scan that overwrites.
func (d *Document) Point(tag string) (Point, bool) {
	var (
		found Point
		ok    bool
	)
	for _, p := range d.Points {
		if p.Underlying.StructureType == tag {
			found, ok = p, true
		}
	}
	return found, ok
}

// Curve returns the first curve block. Curve snapshots carry exactly one.
func (d *Document) Curve() (Block, bool) {
	if len(d.Curves) == 0 {
		return Block{}, false
	}
	return d.Curves[0], true
}

// Settings is a parsed equity metadata document.
type Settings struct {
	XMLName         xml.Name `xml:"marketdata_equity"`
	EstimationCurve string   `xml:"estimation_ccy_curve,attr"`
}

// Currency returns the first three characters of the estimation curve name.
func (s *Settings) Currency() string {
	if len(s.EstimationCurve) < 3 {
		return s.EstimationCurve
	}
	return s.EstimationCurve[:3]
}

// Decode parses a core snapshot.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode snapshot xml: %w", err)
	}
	return &doc, nil
}

// DecodeSettings parses an equity metadata document.
func DecodeSettings(r io.Reader) (*Settings, error) {
	var s Settings
	if err := xml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode settings xml: %w", err)
	}
	return &s, nil
}

// ReadFile opens and decodes a core snapshot file.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// ReadSettingsFile opens and decodes an equity metadata file.
func ReadSettingsFile(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeSettings(f)
}
