package session

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"connectrpc.com/connect"

	"github.com/notrecocon/cocon/internal/assistant"
	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/wire"
	"github.com/notrecocon/cocon/pkg/api"
	"github.com/notrecocon/cocon/pkg/api/apiconnect"
)

// RemoteGateway talks to a JournalService over Connect.
type RemoteGateway struct {
	client apiconnect.JournalServiceClient

	mu    sync.RWMutex
	token string
}

var _ Gateway = (*RemoteGateway)(nil)

// NewRemoteGateway creates a gateway for the server at baseURL.
func NewRemoteGateway(httpClient connect.HTTPClient, baseURL string) *RemoteGateway {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RemoteGateway{client: apiconnect.NewJournalServiceClient(httpClient, baseURL)}
}

// SetToken implements Gateway.
func (g *RemoteGateway) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = token
}

func request[T any](g *RemoteGateway, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.token != "" {
		req.Header().Set("Authorization", "Bearer "+g.token)
	}
	return req
}

// remoteError is a server error as seen by the client. Its text is the
// server's message; errors.Is matches every sentinel the server named.
type remoteError struct {
	msg  string
	errs []error
}

func (e *remoteError) Error() string   { return e.msg }
func (e *remoteError) Unwrap() []error { return e.errs }

// fromConnect turns a Connect error into one that matches the sentinels the
// server attached, plus ErrUnauthenticated or models.ErrPermissionDenied for
// those codes.
func fromConnect(err error) error {
	var cerr *connect.Error
	if !errors.As(err, &cerr) {
		return err
	}
	errs := wire.Sentinels(cerr)
	switch cerr.Code() {
	case connect.CodeUnauthenticated:
		errs = append(errs, ErrUnauthenticated)
	case connect.CodePermissionDenied:
		errs = append(errs, models.ErrPermissionDenied)
	}
	if len(errs) == 0 {
		return err
	}
	return &remoteError{msg: cerr.Message(), errs: append(errs, cerr)}
}

func (g *RemoteGateway) CodesConfigured(ctx context.Context) (bool, error) {
	resp, err := g.client.GetStatus(ctx, request(g, &api.GetStatusRequest{}))
	if err != nil {
		return false, fromConnect(err)
	}
	return resp.Msg.CodesConfigured, nil
}

func (g *RemoteGateway) Login(ctx context.Context, code string) (models.Role, string, error) {
	resp, err := g.client.Login(ctx, request(g, &api.LoginRequest{Code: code}))
	if err != nil {
		return "", "", fromConnect(err)
	}
	role, err := models.ParseRole(resp.Msg.Role)
	if err != nil {
		return "", "", err
	}
	return role, resp.Msg.Token, nil
}

func (g *RemoteGateway) ListEvents(ctx context.Context) ([]*models.Event, error) {
	resp, err := g.client.ListEvents(ctx, request(g, &api.ListEventsRequest{}))
	if err != nil {
		return nil, fromConnect(err)
	}
	events := make([]*models.Event, 0, len(resp.Msg.Events))
	for _, ev := range resp.Msg.Events {
		events = append(events, wire.ToEvent(ev))
	}
	return events, nil
}

func (g *RemoteGateway) AddEvent(ctx context.Context, in models.EventInput) (*models.Event, error) {
	resp, err := g.client.AddEvent(ctx, request(g, &api.AddEventRequest{
		Name: in.Name, StartDate: in.StartDate, EndDate: in.EndDate,
	}))
	if err != nil {
		return nil, fromConnect(err)
	}
	return wire.ToEvent(resp.Msg.Event), nil
}

func (g *RemoteGateway) UpdateEvent(ctx context.Context, eventID string, patch models.EventPatch) (*models.Event, error) {
	resp, err := g.client.UpdateEvent(ctx, request(g, &api.UpdateEventRequest{
		EventID:     eventID,
		Name:        patch.Name,
		StartDate:   patch.StartDate,
		EndDate:     patch.EndDate,
		IsEvergreen: patch.IsEvergreen,
	}))
	if err != nil {
		return nil, fromConnect(err)
	}
	return wire.ToEvent(resp.Msg.Event), nil
}

func (g *RemoteGateway) DeleteEvent(ctx context.Context, eventID string) error {
	_, err := g.client.DeleteEvent(ctx, request(g, &api.DeleteEventRequest{EventID: eventID}))
	return fromConnect(err)
}

func (g *RemoteGateway) ListLogs(ctx context.Context, eventID string) ([]*models.DailyLog, error) {
	resp, err := g.client.ListLogs(ctx, request(g, &api.ListLogsRequest{EventID: eventID}))
	if err != nil {
		return nil, fromConnect(err)
	}
	logs := make([]*models.DailyLog, 0, len(resp.Msg.Logs))
	for _, l := range resp.Msg.Logs {
		logs = append(logs, wire.ToLog(l))
	}
	return logs, nil
}

func (g *RemoteGateway) UpsertLog(ctx context.Context, key models.LogKey, patch models.LogPatch) (*models.DailyLog, error) {
	return logResult(g.client.UpsertLog(ctx, request(g, &api.UpsertLogRequest{
		EventID: key.EventID, Date: key.Date, Patch: wire.LogPatch(patch),
	})))
}

func (g *RemoteGateway) AppendNote(ctx context.Context, key models.LogKey, text string) (*models.DailyLog, error) {
	return logResult(g.client.AppendNote(ctx, request(g, &api.AppendNoteRequest{
		EventID: key.EventID, Date: key.Date, Text: text,
	})))
}

func (g *RemoteGateway) DeleteNote(ctx context.Context, key models.LogKey, noteID string) (*models.DailyLog, error) {
	return logResult(g.client.DeleteNote(ctx, request(g, &api.DeleteNoteRequest{
		EventID: key.EventID, Date: key.Date, NoteID: noteID,
	})))
}

func (g *RemoteGateway) ClearLog(ctx context.Context, key models.LogKey) error {
	_, err := g.client.ClearLog(ctx, request(g, &api.ClearLogRequest{EventID: key.EventID, Date: key.Date}))
	return fromConnect(err)
}

func (g *RemoteGateway) UploadPhoto(ctx context.Context, key models.LogKey, data []byte, contentType, hint string) (*models.DailyLog, error) {
	return logResult(g.client.UploadPhoto(ctx, request(g, &api.UploadPhotoRequest{
		EventID: key.EventID, Date: key.Date, ContentType: contentType, Hint: hint, Data: data,
	})))
}

func (g *RemoteGateway) DeletePhoto(ctx context.Context, key models.LogKey) (*models.DailyLog, error) {
	return logResult(g.client.DeletePhoto(ctx, request(g, &api.DeletePhotoRequest{EventID: key.EventID, Date: key.Date})))
}

func logResult(resp *connect.Response[api.LogResponse], err error) (*models.DailyLog, error) {
	if err != nil {
		return nil, fromConnect(err)
	}
	return wire.ToLog(resp.Msg.Log), nil
}

func (g *RemoteGateway) ResetAll(ctx context.Context) error {
	_, err := g.client.ResetAllData(ctx, request(g, &api.ResetAllDataRequest{}))
	return fromConnect(err)
}

func (g *RemoteGateway) ListBucketItems(ctx context.Context) ([]*models.BucketListItem, error) {
	resp, err := g.client.ListBucketItems(ctx, request(g, &api.ListBucketItemsRequest{}))
	if err != nil {
		return nil, fromConnect(err)
	}
	items := make([]*models.BucketListItem, 0, len(resp.Msg.Items))
	for _, it := range resp.Msg.Items {
		items = append(items, wire.ToBucketItem(it))
	}
	return items, nil
}

func (g *RemoteGateway) AddBucketItem(ctx context.Context, text string) (*models.BucketListItem, error) {
	resp, err := g.client.AddBucketItem(ctx, request(g, &api.AddBucketItemRequest{Text: text}))
	if err != nil {
		return nil, fromConnect(err)
	}
	return wire.ToBucketItem(resp.Msg.Item), nil
}

func (g *RemoteGateway) ToggleBucketItem(ctx context.Context, itemID string, completed bool) (*models.BucketListItem, error) {
	resp, err := g.client.ToggleBucketItem(ctx, request(g, &api.ToggleBucketItemRequest{ItemID: itemID, Completed: completed}))
	if err != nil {
		return nil, fromConnect(err)
	}
	return wire.ToBucketItem(resp.Msg.Item), nil
}

func (g *RemoteGateway) DeleteBucketItem(ctx context.Context, itemID string) error {
	_, err := g.client.DeleteBucketItem(ctx, request(g, &api.DeleteBucketItemRequest{ItemID: itemID}))
	return fromConnect(err)
}

func (g *RemoteGateway) SuggestReplies(ctx context.Context, note string) ([]string, error) {
	resp, err := g.client.SuggestReplies(ctx, request(g, &api.SuggestRepliesRequest{Note: note}))
	if err != nil {
		return nil, fromConnect(err)
	}
	return resp.Msg.SuggestedReplies, nil
}

func (g *RemoteGateway) SongDetails(ctx context.Context, link string) (assistant.SongInfo, error) {
	resp, err := g.client.ExtractSongDetails(ctx, request(g, &api.ExtractSongDetailsRequest{URL: link}))
	if err != nil {
		return assistant.SongInfo{}, fromConnect(err)
	}
	return assistant.SongInfo{Title: resp.Msg.SongTitle, Artist: resp.Msg.SongArtist}, nil
}
