package source

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/tessdev/holiday-service/internal/config"
	"github.com/tessdev/holiday-service/internal/model"
)

// Remote fetches holidays from an HTTP endpoint that returns JSON.
//
// The response is searched with a gjson path so the service can sit in
// front of APIs with different envelopes, e.g.
//
//	[{"name": "...", "date": "2024-01-01"}]                 items_path ""
//	{"days": [{"name": "...", "date": "2024-01-01"}]}       items_path "days"
//	{"result": [{"longName": "...", "startDate": 20240101}]} items_path "result",
//	                                                        name_field "longName",
//	                                                        date_field "startDate",
//	                                                        date_layout "20060102"
//
// One request per call, no retries: a failed fetch is a failed call.
type Remote struct {
	client *resty.Client
	cfg    config.RemoteSourceConfig
}

// NewRemote builds a remote source with its own HTTP client.
func NewRemote(cfg config.RemoteSourceConfig) *Remote {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", config.ServiceName)

	return &Remote{client: client, cfg: cfg}
}

func (r *Remote) GetAll(ctx context.Context) ([]model.Holiday, error) {
	resp, err := r.client.R().SetContext(ctx).Get(r.cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "fetch remote holidays")
	}

	if !resp.IsSuccess() {
		return nil, errors.Errorf("fetch remote holidays: unexpected status %d", resp.StatusCode())
	}

	return r.parse(resp.Body())
}

// parse extracts holidays from a response body.
func (r *Remote) parse(body []byte) ([]model.Holiday, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("remote holidays: response is not valid JSON")
	}

	items := gjson.ParseBytes(body)
	if r.cfg.ItemsPath != "" {
		items = items.Get(r.cfg.ItemsPath)
	}
	if !items.IsArray() {
		return nil, errors.Errorf("remote holidays: %q is not an array", r.cfg.ItemsPath)
	}

	results := items.Array()
	holidays := make([]model.Holiday, 0, len(results))

	for i, item := range results {
		name := item.Get(r.cfg.NameField)
		if name.Type != gjson.String {
			return nil, errors.Errorf("remote holidays: item %d has no string %q", i, r.cfg.NameField)
		}

		rawDate := item.Get(r.cfg.DateField)
		if !rawDate.Exists() {
			return nil, errors.Errorf("remote holidays: item %d has no %q", i, r.cfg.DateField)
		}

		// String() returns the raw digits for numeric dates like 20240101.
		date, err := model.ParseDateLayout(rawDate.String(), r.cfg.DateLayout)
		if err != nil {
			return nil, errors.Wrapf(err, "remote holidays: item %d", i)
		}

		h := model.Holiday{Name: name.String(), Date: date}
		if err := h.Validate(); err != nil {
			return nil, errors.Wrapf(err, "remote holidays: item %d", i)
		}
		holidays = append(holidays, h)
	}

	return holidays, nil
}
