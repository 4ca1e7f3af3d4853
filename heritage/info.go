package heritage

import (
	"context"
	"fmt"
	"net/url"

	"github.com/joseonspace/kheritage-go/transport"
)

// Info looks up the detail record, images and videos of one Item.
// Every call performs its own round trip; nothing is cached between
// them.
type Info struct {
	client transport.Fetcher
	item   Item
}

// Info prepares detail lookups keyed by the item's identity (type
// code, management number, city code).
func (c *Client) Info(item Item) *Info {
	return &Info{client: c.fetch, item: item}
}

func (i *Info) validate() error {
	if i.item.TypeCode == "" {
		return &InvalidParameterError{Param: "ccbaKdcd", Reason: "item has no type code"}
	}
	if i.item.ManagementNumber == "" {
		return &InvalidParameterError{Param: "ccbaAsno", Reason: "item has no management number"}
	}
	if i.item.CityCode == "" {
		return &InvalidParameterError{Param: "ccbaCtcd", Reason: "item has no city code"}
	}
	return nil
}

func (i *Info) params() url.Values {
	return url.Values{
		"ccbaKdcd": []string{i.item.TypeCode},
		"ccbaAsno": []string{i.item.ManagementNumber},
		"ccbaCtcd": []string{i.item.CityCode},
	}
}

// Detail fetches and parses the full descriptive record.
func (i *Info) Detail(ctx context.Context) (*Detail, error) {
	if err := i.validate(); err != nil {
		return nil, err
	}
	body, err := i.client.Fetch(ctx, endpointDetail, i.params())
	if err != nil {
		return nil, fmt.Errorf("heritage detail: %w", err)
	}
	return parseDetail(body, i.item)
}

// Images fetches and parses the item's image list; the list may be
// empty.
func (i *Info) Images(ctx context.Context) (*ImageSet, error) {
	if err := i.validate(); err != nil {
		return nil, err
	}
	body, err := i.client.Fetch(ctx, endpointImages, i.params())
	if err != nil {
		return nil, fmt.Errorf("heritage images: %w", err)
	}
	return parseImageList(body)
}

// Videos fetches and parses the item's video list; the list may be
// empty.
func (i *Info) Videos(ctx context.Context) (*VideoSet, error) {
	if err := i.validate(); err != nil {
		return nil, err
	}
	body, err := i.client.Fetch(ctx, endpointVideos, i.params())
	if err != nil {
		return nil, fmt.Errorf("heritage videos: %w", err)
	}
	return parseVideoList(body)
}
