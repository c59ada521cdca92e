package firestore

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"yogabooker/internal/config"
	"yogabooker/internal/lib/logger/sl"
	"yogabooker/internal/models"
)

// Client issues list/insert calls against the remote collections. Every
// failure mode - transport error, non-2xx status, malformed payload, an
// error body - degrades to an empty result or a false outcome. Callers get
// a well-typed value on every path and decide for themselves whether empty
// means trouble.
type Client struct {
	httpClient  *http.Client
	probeClient *http.Client
	baseURL     string
	apiKey      string
	log         *slog.Logger
}

func New(cfg config.Firestore, log *slog.Logger) *Client {
	return &Client{
		// the main data calls run to completion with no timeout, only the
		// connectivity probe is bounded
		httpClient:  &http.Client{},
		probeClient: &http.Client{Timeout: cfg.ProbeTimeout},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		log:         log,
	}
}

func (c *Client) collectionURL(collection string) string {
	url := c.baseURL
	if collection != "" {
		url += "/" + collection
	}
	if c.apiKey != "" {
		url += "?key=" + c.apiKey
	}

	return url
}

// listDocuments fetches the first page of a collection. Pagination is not
// followed. A body carrying a top-level error is treated like a transport
// failure: no documents.
func (c *Client) listDocuments(ctx context.Context, collection string) []Document {
	log := c.log.With(slog.String("collection", collection))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.collectionURL(collection), nil)
	if err != nil {
		log.Error("failed to build list request", sl.Err(err))
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("list request failed", sl.Err(err))
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read list response", sl.Err(err))
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("list request returned non-success status",
			slog.Int("status", resp.StatusCode))
		return nil
	}

	var list ListResponse
	if err = json.Unmarshal(body, &list); err != nil {
		log.Error("failed to decode list response", sl.Err(err))
		return nil
	}

	if list.Error != nil {
		log.Error("remote store returned an error body",
			slog.Int("code", list.Error.Code),
			slog.String("message", list.Error.Message))
		return nil
	}

	return list.Documents
}

// ListInstances returns every class instance on the first page of the
// instances collection. Records missing mandatory fields are dropped
// one by one; the rest of the batch survives.
func (c *Client) ListInstances(ctx context.Context) []models.ClassInstance {
	docs := c.listDocuments(ctx, InstancesCollection)

	instances := make([]models.ClassInstance, 0, len(docs))
	for _, doc := range docs {
		instance := DecodeClassInstance(doc)
		if instance == nil {
			c.log.Debug("skipping instance document with missing mandatory fields",
				slog.String("name", doc.Name))
			continue
		}
		instances = append(instances, *instance)
	}

	return instances
}

// ListCourses returns every course on the first page of the courses
// collection.
func (c *Client) ListCourses(ctx context.Context) []models.Course {
	docs := c.listDocuments(ctx, CoursesCollection)

	courses := make([]models.Course, 0, len(docs))
	for _, doc := range docs {
		courses = append(courses, DecodeCourse(doc))
	}

	return courses
}

// ListBookings returns every booking on the first page of the bookings
// collection, malformed ones included as zero-valued records.
func (c *Client) ListBookings(ctx context.Context) []models.Booking {
	docs := c.listDocuments(ctx, BookingsCollection)

	bookings := make([]models.Booking, 0, len(docs))
	for _, doc := range docs {
		bookings = append(bookings, DecodeBooking(doc))
	}

	return bookings
}

// ListBookingsByEmail filters ListBookings client-side; the remote store is
// queried without a server-side filter.
func (c *Client) ListBookingsByEmail(ctx context.Context, email string) []models.Booking {
	all := c.ListBookings(ctx)

	matched := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if b.Email == email {
			matched = append(matched, b)
		}
	}

	return matched
}

// InsertBooking posts one booking document, stamped with the current UTC
// time. The call is at-most-once: no retry, no read-after-write check, so a
// response lost after a server-side write reports as failure.
func (c *Client) InsertBooking(ctx context.Context, email string, instanceIDs []int) bool {
	log := c.log.With(slog.String("collection", BookingsCollection))

	doc := EncodeBooking(email, instanceIDs, time.Now().UTC().Format(time.RFC3339))

	payload, err := json.Marshal(doc)
	if err != nil {
		log.Error("failed to encode booking", sl.Err(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.collectionURL(BookingsCollection), bytes.NewReader(payload))
	if err != nil {
		log.Error("failed to build insert request", sl.Err(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("insert request failed", sl.Err(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Error("insert request returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return false
	}

	return true
}

// TestConnectivity probes the database root with a bounded request and
// reports whether it answered with a success status.
func (c *Client) TestConnectivity(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.collectionURL(""), nil)
	if err != nil {
		c.log.Error("failed to build probe request", sl.Err(err))
		return false
	}

	resp, err := c.probeClient.Do(req)
	if err != nil {
		c.log.Debug("connectivity probe failed", sl.Err(err))
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
