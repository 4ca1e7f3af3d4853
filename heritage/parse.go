package heritage

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// Wire structures per response schema. Required numeric fields are
// pointers so an absent node is distinguishable from an empty one.

type searchListXML struct {
	XMLName   xml.Name        `xml:"result"`
	TotalCnt  *string         `xml:"totalCnt"`
	PageUnit  *string         `xml:"pageUnit"`
	PageIndex *string         `xml:"pageIndex"`
	Items     []searchItemXML `xml:"item"`
}

type searchItemXML struct {
	Seq              string `xml:"sn"`
	LinkedNumber     string `xml:"ccbaCpno"`
	Name             string `xml:"ccbaMnm1"`
	NameHanja        string `xml:"ccbaMnm2"`
	TypeCode         string `xml:"ccbaKdcd"`
	TypeName         string `xml:"ccmaName"`
	CityCode         string `xml:"ccbaCtcd"`
	CityName         string `xml:"ccbaCtcdNm"`
	DistrictName     string `xml:"ccsiName"`
	Administrator    string `xml:"ccbaAdmin"`
	ManagementNumber string `xml:"ccbaAsno"`
	Canceled         string `xml:"ccbaCncl"`
	Longitude        string `xml:"longitude"`
	Latitude         string `xml:"latitude"`
}

type detailXML struct {
	XMLName          xml.Name       `xml:"result"`
	TypeCode         string         `xml:"ccbaKdcd"`
	ManagementNumber string         `xml:"ccbaAsno"`
	CityCode         string         `xml:"ccbaCtcd"`
	LinkedNumber     string         `xml:"ccbaCpno"`
	Longitude        string         `xml:"longitude"`
	Latitude         string         `xml:"latitude"`
	Item             *detailItemXML `xml:"item"`
}

type detailItemXML struct {
	Name           string `xml:"ccbaMnm1"`
	NameHanja      string `xml:"ccbaMnm2"`
	TypeName       string `xml:"ccmaName"`
	CityName       string `xml:"ccbaCtcdNm"`
	DistrictName   string `xml:"ccsiName"`
	Location       string `xml:"ccbaLcad"`
	Era            string `xml:"ccceName"`
	Quantity       string `xml:"ccbaQuan"`
	DesignatedDate string `xml:"ccbaAsdt"`
	Owner          string `xml:"ccbaPoss"`
	Administrator  string `xml:"ccbaAdmin"`
	ImageURL       string `xml:"imageUrl"`
	Content        string `xml:"content"`
}

type imageListXML struct {
	XMLName  xml.Name       `xml:"result"`
	TotalCnt *string        `xml:"totalCnt"`
	Items    []imageItemXML `xml:"item"`
}

type imageItemXML struct {
	Seq         string `xml:"sn"`
	Licence     string `xml:"imageNuri"`
	URL         string `xml:"imageUrl"`
	Description string `xml:"ccimDesc"`
}

type videoListXML struct {
	XMLName  xml.Name       `xml:"result"`
	TotalCnt *string        `xml:"totalCnt"`
	Items    []videoItemXML `xml:"item"`
}

type videoItemXML struct {
	Seq string `xml:"sn"`
	URL string `xml:"videoUrl"`
}

type eventListXML struct {
	XMLName xml.Name       `xml:"result"`
	Items   []eventItemXML `xml:"item"`
}

type eventItemXML struct {
	Seq       string `xml:"sn"`
	TypeCode  string `xml:"siteCode"`
	Title     string `xml:"subTitle"`
	Content   string `xml:"subContent"`
	Province  string `xml:"sido"`
	District  string `xml:"gugun"`
	StartDate string `xml:"sDate"`
	EndDate   string `xml:"eDate"`
	Organizer string `xml:"groupName"`
	Contact   string `xml:"contact"`
}

// unmarshalResult decodes body into the given wire struct, mapping a
// wrong or unparsable document to a SchemaMismatchError.
func unmarshalResult(body []byte, dest any, schema string) error {
	if err := xml.Unmarshal(body, dest); err != nil {
		return &SchemaMismatchError{
			Expected: schema + " document rooted at <result>",
			Found:    err.Error(),
		}
	}
	return nil
}

func parseSearchList(body []byte) (*SearchResult, error) {
	var wire searchListXML
	if err := unmarshalResult(body, &wire, "search-list"); err != nil {
		return nil, err
	}

	hits, err := requiredInt("totalCnt", wire.TotalCnt)
	if err != nil {
		return nil, err
	}
	limit, err := requiredInt("pageUnit", wire.PageUnit)
	if err != nil {
		return nil, err
	}
	offset, err := requiredInt("pageIndex", wire.PageIndex)
	if err != nil {
		return nil, err
	}

	if hits > 0 && len(wire.Items) == 0 {
		return nil, &SchemaMismatchError{
			Expected: fmt.Sprintf("repeating <item> nodes for %d hits", hits),
			Found:    "none",
		}
	}
	if len(wire.Items) > limit {
		return nil, &SchemaMismatchError{
			Expected: fmt.Sprintf("at most %d <item> nodes (pageUnit)", limit),
			Found:    strconv.Itoa(len(wire.Items)),
		}
	}

	items := make([]Item, 0, len(wire.Items))
	for _, w := range wire.Items {
		item, err := convertItem(w)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &SearchResult{Hits: hits, Limit: limit, Offset: offset, Items: items}, nil
}

func convertItem(w searchItemXML) (Item, error) {
	seq, err := optionalInt("sn", w.Seq)
	if err != nil {
		return Item{}, err
	}
	lon, err := optionalFloat("longitude", w.Longitude)
	if err != nil {
		return Item{}, err
	}
	lat, err := optionalFloat("latitude", w.Latitude)
	if err != nil {
		return Item{}, err
	}

	return Item{
		Seq:              seq,
		LinkedNumber:     w.LinkedNumber,
		Name:             w.Name,
		NameHanja:        w.NameHanja,
		TypeCode:         w.TypeCode,
		TypeName:         w.TypeName,
		CityCode:         w.CityCode,
		CityName:         w.CityName,
		DistrictName:     w.DistrictName,
		Administrator:    w.Administrator,
		ManagementNumber: w.ManagementNumber,
		Canceled:         w.Canceled == "Y",
		Longitude:        lon,
		Latitude:         lat,
	}, nil
}

// parseDetail merges the detail response into a copy of the preview
// item, so identity fields survive even when the response omits them.
func parseDetail(body []byte, preview Item) (*Detail, error) {
	var wire detailXML
	if err := unmarshalResult(body, &wire, "detail"); err != nil {
		return nil, err
	}
	if wire.Item == nil {
		return nil, &SchemaMismatchError{
			Expected: "a single detail <item> node",
			Found:    "none",
		}
	}

	detail := Detail{Item: preview}
	w := wire.Item
	override(&detail.Name, w.Name)
	override(&detail.NameHanja, w.NameHanja)
	override(&detail.TypeName, w.TypeName)
	override(&detail.CityName, w.CityName)
	override(&detail.DistrictName, w.DistrictName)
	override(&detail.Administrator, w.Administrator)
	override(&detail.TypeCode, wire.TypeCode)
	override(&detail.ManagementNumber, wire.ManagementNumber)
	override(&detail.CityCode, wire.CityCode)
	override(&detail.LinkedNumber, wire.LinkedNumber)

	if wire.Longitude != "" {
		lon, err := optionalFloat("longitude", wire.Longitude)
		if err != nil {
			return nil, err
		}
		detail.Longitude = lon
	}
	if wire.Latitude != "" {
		lat, err := optionalFloat("latitude", wire.Latitude)
		if err != nil {
			return nil, err
		}
		detail.Latitude = lat
	}

	detail.Location = w.Location
	detail.Era = w.Era
	detail.Quantity = w.Quantity
	detail.DesignatedDate = w.DesignatedDate
	detail.Owner = w.Owner
	detail.Content = w.Content
	detail.ImageURL = w.ImageURL

	return &detail, nil
}

func parseImageList(body []byte) (*ImageSet, error) {
	var wire imageListXML
	if err := unmarshalResult(body, &wire, "image-list"); err != nil {
		return nil, err
	}

	count, err := requiredInt("totalCnt", wire.TotalCnt)
	if err != nil {
		return nil, err
	}
	if count > 0 && len(wire.Items) == 0 {
		return nil, &SchemaMismatchError{
			Expected: fmt.Sprintf("repeating <item> nodes for %d images", count),
			Found:    "none",
		}
	}

	images := make([]Image, 0, len(wire.Items))
	for _, w := range wire.Items {
		seq, err := optionalInt("sn", w.Seq)
		if err != nil {
			return nil, err
		}
		images = append(images, Image{
			Seq:         seq,
			URL:         w.URL,
			Licence:     w.Licence,
			Description: w.Description,
		})
	}

	return &ImageSet{Count: count, Images: images}, nil
}

func parseVideoList(body []byte) (*VideoSet, error) {
	var wire videoListXML
	if err := unmarshalResult(body, &wire, "video-list"); err != nil {
		return nil, err
	}

	count, err := requiredInt("totalCnt", wire.TotalCnt)
	if err != nil {
		return nil, err
	}
	if count > 0 && len(wire.Items) == 0 {
		return nil, &SchemaMismatchError{
			Expected: fmt.Sprintf("repeating <item> nodes for %d videos", count),
			Found:    "none",
		}
	}

	videos := make([]Video, 0, len(wire.Items))
	for _, w := range wire.Items {
		seq, err := optionalInt("sn", w.Seq)
		if err != nil {
			return nil, err
		}
		videos = append(videos, Video{Seq: seq, URL: w.URL})
	}

	return &VideoSet{Videos: videos}, nil
}

func parseEventList(body []byte) ([]Event, error) {
	var wire eventListXML
	if err := unmarshalResult(body, &wire, "event-list"); err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(wire.Items))
	for _, w := range wire.Items {
		if w.Title == "" {
			return nil, &MalformedResponseError{Field: "subTitle"}
		}
		if w.StartDate == "" {
			return nil, &MalformedResponseError{Field: "sDate"}
		}
		if w.EndDate == "" {
			return nil, &MalformedResponseError{Field: "eDate"}
		}
		seq, err := optionalInt("sn", w.Seq)
		if err != nil {
			return nil, err
		}
		events = append(events, Event{
			Seq:       seq,
			TypeCode:  w.TypeCode,
			Title:     w.Title,
			Content:   w.Content,
			Province:  w.Province,
			District:  w.District,
			StartDate: w.StartDate,
			EndDate:   w.EndDate,
			Organizer: w.Organizer,
			Contact:   w.Contact,
		})
	}

	return events, nil
}

// requiredInt coerces a mandatory numeric field, reporting its absence
// or a non-numeric value.
func requiredInt(field string, raw *string) (int, error) {
	if raw == nil {
		return 0, &MalformedResponseError{Field: field}
	}
	n, err := strconv.Atoi(*raw)
	if err != nil {
		return 0, &MalformedResponseError{Field: field, Value: *raw}
	}
	return n, nil
}

// optionalInt coerces a numeric field that may be absent; empty maps
// to zero, junk is still an error.
func optionalInt(field, raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &MalformedResponseError{Field: field, Value: raw}
	}
	return n, nil
}

func optionalFloat(field, raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &MalformedResponseError{Field: field, Value: raw}
	}
	return f, nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
