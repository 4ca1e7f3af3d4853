package heritage

import (
	"fmt"
	"strings"
)

// Item is one heritage entry from a search-list response. It carries
// enough identity (type code, management number, city code) to request
// its detail record.
type Item struct {
	Seq              int
	LinkedNumber     string
	Name             string
	NameHanja        string
	TypeCode         string
	TypeName         string
	CityCode         string
	CityName         string
	DistrictName     string
	Administrator    string
	ManagementNumber string
	Canceled         bool
	Longitude        float64
	Latitude         float64
}

func (i Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]", i.Name, i.TypeName)
	if i.CityName != "" || i.DistrictName != "" {
		fmt.Fprintf(&b, " - %s %s", i.CityName, i.DistrictName)
	}
	fmt.Fprintf(&b, " (no. %s-%s-%s)", i.TypeCode, i.ManagementNumber, i.CityCode)
	if i.Canceled {
		b.WriteString(" [designation canceled]")
	}
	return b.String()
}

// SearchResult is one page of a heritage search.
type SearchResult struct {
	// Hits is the total number of matches across all pages.
	Hits int
	// Limit is the requested page size (pageUnit).
	Limit int
	// Offset is the 1-based page index (pageIndex).
	Offset int
	// Items holds at most Limit entries, in response order.
	Items []Item
}

func (r SearchResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "search result: %d hits (page %d, %d per page)\n", r.Hits, r.Offset, r.Limit)
	for _, item := range r.Items {
		fmt.Fprintf(&b, "  %s\n", item)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Detail is the full descriptive record of one Item.
type Detail struct {
	Item

	Location       string
	Era            string
	Quantity       string
	DesignatedDate string
	Owner          string
	Content        string
	ImageURL       string
}

func (d Detail) String() string {
	var b strings.Builder
	b.WriteString(d.Item.String())
	if d.Location != "" {
		fmt.Fprintf(&b, "\n  location: %s", d.Location)
	}
	if d.Era != "" {
		fmt.Fprintf(&b, "\n  era: %s", d.Era)
	}
	if d.DesignatedDate != "" {
		fmt.Fprintf(&b, "\n  designated: %s", d.DesignatedDate)
	}
	if d.Owner != "" {
		fmt.Fprintf(&b, "\n  owner: %s", d.Owner)
	}
	if d.Content != "" {
		fmt.Fprintf(&b, "\n  %s", d.Content)
	}
	return b.String()
}

// Image is one grounds image attached to an item.
type Image struct {
	Seq         int
	URL         string
	Licence     string
	Description string
}

func (i Image) String() string {
	if i.Description == "" {
		return i.URL
	}
	return fmt.Sprintf("%s - %s", i.Description, i.URL)
}

// ImageSet lists the images of one item; it may be empty.
type ImageSet struct {
	Count  int
	Images []Image
}

func (s ImageSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d image(s)", s.Count)
	for _, img := range s.Images {
		fmt.Fprintf(&b, "\n  %s", img)
	}
	return b.String()
}

// Video is one video attached to an item.
type Video struct {
	Seq int
	URL string
}

func (v Video) String() string { return v.URL }

// VideoSet lists the videos of one item; it may be empty.
type VideoSet struct {
	Videos []Video
}

func (s VideoSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d video(s)", len(s.Videos))
	for _, v := range s.Videos {
		fmt.Fprintf(&b, "\n  %s", v)
	}
	return b.String()
}

// Event is a scheduled heritage program from the event search.
type Event struct {
	Seq       int
	TypeCode  string
	Title     string
	Content   string
	Province  string
	District  string
	StartDate string
	EndDate   string
	Organizer string
	Contact   string
}

func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s - %s)", e.Title, e.StartDate, e.EndDate)
	if e.Province != "" || e.District != "" {
		fmt.Fprintf(&b, " - %s %s", e.Province, e.District)
	}
	if e.Organizer != "" {
		fmt.Fprintf(&b, ", %s", e.Organizer)
	}
	return b.String()
}
