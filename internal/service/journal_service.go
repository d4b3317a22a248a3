package service

import (
	"bytes"
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/notrecocon/cocon/internal/assistant"
	"github.com/notrecocon/cocon/internal/auth"
	"github.com/notrecocon/cocon/internal/journal"
	"github.com/notrecocon/cocon/internal/middleware"
	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/wire"
	"github.com/notrecocon/cocon/pkg/api"
	"github.com/notrecocon/cocon/pkg/api/apiconnect"
)

// JournalService implements the JournalService RPC interface.
type JournalService struct {
	journal       *journal.Journal
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	replies       assistant.ReplySuggester
	songs         assistant.SongDetailer
	logger        *slog.Logger
}

var _ apiconnect.JournalServiceHandler = (*JournalService)(nil)

// Options holds the optional collaborators of a JournalService.
type Options struct {
	Replies assistant.ReplySuggester
	Songs   assistant.SongDetailer
	Logger  *slog.Logger
}

// NewJournalService creates a new journal service.
func NewJournalService(j *journal.Journal, authenticator auth.Authenticator, jwtManager *auth.JWTManager, opts Options) *JournalService {
	if opts.Replies == nil {
		opts.Replies = assistant.Unavailable{}
	}
	if opts.Songs == nil {
		opts.Songs = assistant.NewOEmbedClient("", nil)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &JournalService{
		journal:       j,
		authenticator: authenticator,
		jwtManager:    jwtManager,
		replies:       opts.Replies,
		songs:         opts.Songs,
		logger:        opts.Logger,
	}
}

// GetStatus reports whether access codes have been set up.
func (s *JournalService) GetStatus(ctx context.Context, _ *connect.Request[api.GetStatusRequest]) (*connect.Response[api.GetStatusResponse], error) {
	ok, err := s.authenticator.CodesConfigured(ctx)
	if err != nil {
		return nil, s.toConnectError("GetStatus", err)
	}
	return connect.NewResponse(&api.GetStatusResponse{CodesConfigured: ok}), nil
}

// Login exchanges an access code for a role and a bearer token.
func (s *JournalService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	role, err := s.authenticator.Authenticate(ctx, req.Msg.Code)
	if err != nil {
		s.logger.Warn("Login failed", "error", err)
		return nil, s.toConnectError("Login", err)
	}

	token, err := s.jwtManager.Generate(role)
	if err != nil {
		return nil, s.toConnectError("Login", err)
	}

	s.logger.Info("Logged in", "role", role)
	return connect.NewResponse(&api.LoginResponse{Role: role.String(), Token: token}), nil
}

// ListEvents returns every event in display order.
func (s *JournalService) ListEvents(ctx context.Context, _ *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	events, err := s.journal.ListEvents(ctx)
	if err != nil {
		return nil, s.toConnectError("ListEvents", err)
	}
	return connect.NewResponse(&api.ListEventsResponse{Events: wire.Events(events)}), nil
}

// AddEvent creates a dated event.
func (s *JournalService) AddEvent(ctx context.Context, req *connect.Request[api.AddEventRequest]) (*connect.Response[api.EventResponse], error) {
	ev, err := s.journal.AddEvent(ctx, middleware.GetRole(ctx), models.EventInput{
		Name:      req.Msg.Name,
		StartDate: req.Msg.StartDate,
		EndDate:   req.Msg.EndDate,
	})
	if err != nil {
		return nil, s.toConnectError("AddEvent", err)
	}
	return connect.NewResponse(&api.EventResponse{Event: wire.Event(ev)}), nil
}

// UpdateEvent merges a partial update into an event.
func (s *JournalService) UpdateEvent(ctx context.Context, req *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.EventResponse], error) {
	ev, err := s.journal.UpdateEvent(ctx, middleware.GetRole(ctx), req.Msg.EventID, models.EventPatch{
		Name:        req.Msg.Name,
		StartDate:   req.Msg.StartDate,
		EndDate:     req.Msg.EndDate,
		IsEvergreen: req.Msg.IsEvergreen,
	})
	if err != nil {
		return nil, s.toConnectError("UpdateEvent", err)
	}
	return connect.NewResponse(&api.EventResponse{Event: wire.Event(ev)}), nil
}

// DeleteEvent removes an event with its logs and photos.
func (s *JournalService) DeleteEvent(ctx context.Context, req *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	if err := s.journal.DeleteEvent(ctx, middleware.GetRole(ctx), req.Msg.EventID); err != nil {
		return nil, s.toConnectError("DeleteEvent", err)
	}
	return connect.NewResponse(&api.DeleteEventResponse{}), nil
}

// ListLogs returns the logs of one event.
func (s *JournalService) ListLogs(ctx context.Context, req *connect.Request[api.ListLogsRequest]) (*connect.Response[api.ListLogsResponse], error) {
	logs, err := s.journal.ListLogs(ctx, req.Msg.EventID)
	if err != nil {
		return nil, s.toConnectError("ListLogs", err)
	}
	return connect.NewResponse(&api.ListLogsResponse{Logs: wire.Logs(logs)}), nil
}

// UpsertLog merges a patch into the log for one day.
func (s *JournalService) UpsertLog(ctx context.Context, req *connect.Request[api.UpsertLogRequest]) (*connect.Response[api.LogResponse], error) {
	patch, err := wire.ToLogPatch(req.Msg.Patch)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	log, err := s.journal.UpsertLog(ctx, middleware.GetRole(ctx), logKey(req.Msg.EventID, req.Msg.Date), patch)
	if err != nil {
		return nil, s.toConnectError("UpsertLog", err)
	}
	return logResponse(log), nil
}

// AppendNote adds a note for the caller's role.
func (s *JournalService) AppendNote(ctx context.Context, req *connect.Request[api.AppendNoteRequest]) (*connect.Response[api.LogResponse], error) {
	log, err := s.journal.AppendNote(ctx, middleware.GetRole(ctx), logKey(req.Msg.EventID, req.Msg.Date), req.Msg.Text)
	if err != nil {
		return nil, s.toConnectError("AppendNote", err)
	}
	return logResponse(log), nil
}

// DeleteNote removes a single note.
func (s *JournalService) DeleteNote(ctx context.Context, req *connect.Request[api.DeleteNoteRequest]) (*connect.Response[api.LogResponse], error) {
	log, err := s.journal.DeleteNote(ctx, middleware.GetRole(ctx), logKey(req.Msg.EventID, req.Msg.Date), req.Msg.NoteID)
	if err != nil {
		return nil, s.toConnectError("DeleteNote", err)
	}
	return logResponse(log), nil
}

// ClearLog deletes a whole day.
func (s *JournalService) ClearLog(ctx context.Context, req *connect.Request[api.ClearLogRequest]) (*connect.Response[api.ClearLogResponse], error) {
	if err := s.journal.ClearLog(ctx, middleware.GetRole(ctx), logKey(req.Msg.EventID, req.Msg.Date)); err != nil {
		return nil, s.toConnectError("ClearLog", err)
	}
	return connect.NewResponse(&api.ClearLogResponse{}), nil
}

// UploadPhoto stores the caller's photo for a day.
func (s *JournalService) UploadPhoto(ctx context.Context, req *connect.Request[api.UploadPhotoRequest]) (*connect.Response[api.LogResponse], error) {
	m := req.Msg
	log, err := s.journal.UploadPhoto(ctx, middleware.GetRole(ctx), logKey(m.EventID, m.Date),
		bytes.NewReader(m.Data), int64(len(m.Data)), m.ContentType, m.Hint)
	if err != nil {
		return nil, s.toConnectError("UploadPhoto", err)
	}
	return logResponse(log), nil
}

// DeletePhoto removes the caller's photo for a day.
func (s *JournalService) DeletePhoto(ctx context.Context, req *connect.Request[api.DeletePhotoRequest]) (*connect.Response[api.LogResponse], error) {
	log, err := s.journal.DeletePhoto(ctx, middleware.GetRole(ctx), logKey(req.Msg.EventID, req.Msg.Date))
	if err != nil {
		return nil, s.toConnectError("DeletePhoto", err)
	}
	return logResponse(log), nil
}

// ResetAllData wipes every log and dated event.
func (s *JournalService) ResetAllData(ctx context.Context, _ *connect.Request[api.ResetAllDataRequest]) (*connect.Response[api.ResetAllDataResponse], error) {
	if err := s.journal.ResetAll(ctx, middleware.GetRole(ctx)); err != nil {
		return nil, s.toConnectError("ResetAllData", err)
	}
	return connect.NewResponse(&api.ResetAllDataResponse{}), nil
}

// ListBucketItems returns the shared bucket list.
func (s *JournalService) ListBucketItems(ctx context.Context, _ *connect.Request[api.ListBucketItemsRequest]) (*connect.Response[api.ListBucketItemsResponse], error) {
	items, err := s.journal.ListBucketItems(ctx)
	if err != nil {
		return nil, s.toConnectError("ListBucketItems", err)
	}
	return connect.NewResponse(&api.ListBucketItemsResponse{Items: wire.BucketItems(items)}), nil
}

// AddBucketItem adds an entry to the bucket list.
func (s *JournalService) AddBucketItem(ctx context.Context, req *connect.Request[api.AddBucketItemRequest]) (*connect.Response[api.BucketItemResponse], error) {
	item, err := s.journal.AddBucketItem(ctx, middleware.GetRole(ctx), req.Msg.Text)
	if err != nil {
		return nil, s.toConnectError("AddBucketItem", err)
	}
	return connect.NewResponse(&api.BucketItemResponse{Item: wire.BucketItem(item)}), nil
}

// ToggleBucketItem marks an entry done or not done.
func (s *JournalService) ToggleBucketItem(ctx context.Context, req *connect.Request[api.ToggleBucketItemRequest]) (*connect.Response[api.BucketItemResponse], error) {
	item, err := s.journal.ToggleBucketItem(ctx, middleware.GetRole(ctx), req.Msg.ItemID, req.Msg.Completed)
	if err != nil {
		return nil, s.toConnectError("ToggleBucketItem", err)
	}
	return connect.NewResponse(&api.BucketItemResponse{Item: wire.BucketItem(item)}), nil
}

// DeleteBucketItem removes an entry from the bucket list.
func (s *JournalService) DeleteBucketItem(ctx context.Context, req *connect.Request[api.DeleteBucketItemRequest]) (*connect.Response[api.DeleteBucketItemResponse], error) {
	if err := s.journal.DeleteBucketItem(ctx, middleware.GetRole(ctx), req.Msg.ItemID); err != nil {
		return nil, s.toConnectError("DeleteBucketItem", err)
	}
	return connect.NewResponse(&api.DeleteBucketItemResponse{}), nil
}

// SuggestReplies proposes replies to a note. Nothing is stored.
func (s *JournalService) SuggestReplies(ctx context.Context, req *connect.Request[api.SuggestRepliesRequest]) (*connect.Response[api.SuggestRepliesResponse], error) {
	replies, err := s.replies.SuggestReplies(ctx, req.Msg.Note)
	if err != nil {
		s.logger.Warn("Reply suggestions unavailable", "error", err)
		return nil, s.toConnectError("SuggestReplies", err)
	}
	return connect.NewResponse(&api.SuggestRepliesResponse{SuggestedReplies: replies}), nil
}

// ExtractSongDetails looks up the title and artist behind a song link.
func (s *JournalService) ExtractSongDetails(ctx context.Context, req *connect.Request[api.ExtractSongDetailsRequest]) (*connect.Response[api.ExtractSongDetailsResponse], error) {
	info, err := s.songs.SongDetails(ctx, req.Msg.URL)
	if err != nil {
		s.logger.Warn("Song lookup failed", "url", req.Msg.URL, "error", err)
		return nil, s.toConnectError("ExtractSongDetails", err)
	}
	return connect.NewResponse(&api.ExtractSongDetailsResponse{SongTitle: info.Title, SongArtist: info.Artist}), nil
}

func logKey(eventID, date string) models.LogKey {
	return models.LogKey{EventID: eventID, Date: date}
}

func logResponse(log *models.DailyLog) *connect.Response[api.LogResponse] {
	return connect.NewResponse(&api.LogResponse{Log: wire.Log(log)})
}
