package palace

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/joseonspace/kheritage-go/heritage"
)

// Structure is one building or site on a palace's grounds, as listed
// by the list endpoint.
type Structure struct {
	Seq          int
	SerialNumber string
	Palace       Code
	DetailCode   string
	Name         string
	NameEng      string
}

func (s Structure) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if s.NameEng != "" {
		fmt.Fprintf(&b, " (%s)", s.NameEng)
	}
	fmt.Fprintf(&b, " - %s, no. %s-%s", s.Palace, s.SerialNumber, s.DetailCode)
	return b.String()
}

// StructureDetail is the full record of one structure.
type StructureDetail struct {
	Structure

	Content  string
	ImageURL string
}

func (d StructureDetail) String() string {
	var b strings.Builder
	b.WriteString(d.Structure.String())
	if d.Content != "" {
		fmt.Fprintf(&b, "\n  %s", d.Content)
	}
	return b.String()
}

// The list response repeats <list> nodes; the detail response carries
// its fields at the document root.

type structureListXML struct {
	Items []structureItemXML `xml:"list"`
}

type structureItemXML struct {
	Seq          string `xml:"sn"`
	SerialNumber string `xml:"serial_number"`
	PalaceCode   string `xml:"gung_number"`
	DetailCode   string `xml:"detail_code"`
	Name         string `xml:"name_kor"`
	NameEng      string `xml:"name_eng"`
}

type structureDetailXML struct {
	SerialNumber string `xml:"serial_number"`
	PalaceCode   string `xml:"gung_number"`
	DetailCode   string `xml:"detail_code"`
	Name         string `xml:"name_kor"`
	NameEng      string `xml:"name_eng"`
	Content      string `xml:"content"`
	ImageURL     string `xml:"image_url"`
}

func parseStructureList(body []byte) ([]Structure, error) {
	var wire structureListXML
	if err := xml.Unmarshal(body, &wire); err != nil {
		return nil, &heritage.SchemaMismatchError{
			Expected: "palace structure-list document",
			Found:    err.Error(),
		}
	}
	if len(wire.Items) == 0 {
		return nil, &heritage.SchemaMismatchError{
			Expected: "repeating <list> nodes",
			Found:    "none",
		}
	}

	structures := make([]Structure, 0, len(wire.Items))
	for _, w := range wire.Items {
		if w.SerialNumber == "" {
			return nil, &heritage.MalformedResponseError{Field: "serial_number"}
		}
		seq, err := optionalInt("sn", w.Seq)
		if err != nil {
			return nil, err
		}
		structures = append(structures, Structure{
			Seq:          seq,
			SerialNumber: w.SerialNumber,
			Palace:       Code(w.PalaceCode),
			DetailCode:   w.DetailCode,
			Name:         w.Name,
			NameEng:      w.NameEng,
		})
	}

	return structures, nil
}

// parseStructureDetail merges the response into a copy of the listed
// structure so identity fields survive a sparse response.
func parseStructureDetail(body []byte, listed Structure) (*StructureDetail, error) {
	var wire structureDetailXML
	if err := xml.Unmarshal(body, &wire); err != nil {
		return nil, &heritage.SchemaMismatchError{
			Expected: "palace structure-detail document",
			Found:    err.Error(),
		}
	}
	if wire.Name == "" && wire.Content == "" {
		return nil, &heritage.MalformedResponseError{Field: "name_kor"}
	}

	detail := StructureDetail{Structure: listed}
	if wire.Name != "" {
		detail.Name = wire.Name
	}
	if wire.NameEng != "" {
		detail.NameEng = wire.NameEng
	}
	detail.Content = wire.Content
	detail.ImageURL = wire.ImageURL

	return &detail, nil
}

func optionalInt(field, raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &heritage.MalformedResponseError{Field: field, Value: raw}
	}
	return n, nil
}
