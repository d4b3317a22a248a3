// Package apiconnect wires the JournalService onto connectrpc.com/connect.
//
// It has the same shape as protoc-gen-connect-go output: procedure constants,
// a client, a handler interface and a handler constructor. Messages are the
// plain structs from package api, carried by the JSON codec in this package.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/notrecocon/cocon/pkg/api"
)

// JournalServiceName is the fully-qualified name of the JournalService service.
const JournalServiceName = "cocon.v1.JournalService"

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	// JournalServiceGetStatusProcedure is the fully-qualified name of the JournalService's GetStatus RPC.
	JournalServiceGetStatusProcedure          = "/cocon.v1.JournalService/GetStatus"
	// JournalServiceLoginProcedure is the fully-qualified name of the JournalService's Login RPC.
	JournalServiceLoginProcedure              = "/cocon.v1.JournalService/Login"
	// JournalServiceListEventsProcedure is the fully-qualified name of the JournalService's ListEvents RPC.
	JournalServiceListEventsProcedure         = "/cocon.v1.JournalService/ListEvents"
	// JournalServiceAddEventProcedure is the fully-qualified name of the JournalService's AddEvent RPC.
	JournalServiceAddEventProcedure           = "/cocon.v1.JournalService/AddEvent"
	// JournalServiceUpdateEventProcedure is the fully-qualified name of the JournalService's UpdateEvent RPC.
	JournalServiceUpdateEventProcedure        = "/cocon.v1.JournalService/UpdateEvent"
	// JournalServiceDeleteEventProcedure is the fully-qualified name of the JournalService's DeleteEvent RPC.
	JournalServiceDeleteEventProcedure        = "/cocon.v1.JournalService/DeleteEvent"
	// JournalServiceListLogsProcedure is the fully-qualified name of the JournalService's ListLogs RPC.
	JournalServiceListLogsProcedure           = "/cocon.v1.JournalService/ListLogs"
	// JournalServiceUpsertLogProcedure is the fully-qualified name of the JournalService's UpsertLog RPC.
	JournalServiceUpsertLogProcedure          = "/cocon.v1.JournalService/UpsertLog"
	// JournalServiceAppendNoteProcedure is the fully-qualified name of the JournalService's AppendNote RPC.
	JournalServiceAppendNoteProcedure         = "/cocon.v1.JournalService/AppendNote"
	// JournalServiceDeleteNoteProcedure is the fully-qualified name of the JournalService's DeleteNote RPC.
	JournalServiceDeleteNoteProcedure         = "/cocon.v1.JournalService/DeleteNote"
	// JournalServiceClearLogProcedure is the fully-qualified name of the JournalService's ClearLog RPC.
	JournalServiceClearLogProcedure           = "/cocon.v1.JournalService/ClearLog"
	// JournalServiceUploadPhotoProcedure is the fully-qualified name of the JournalService's UploadPhoto RPC.
	JournalServiceUploadPhotoProcedure        = "/cocon.v1.JournalService/UploadPhoto"
	// JournalServiceDeletePhotoProcedure is the fully-qualified name of the JournalService's DeletePhoto RPC.
	JournalServiceDeletePhotoProcedure        = "/cocon.v1.JournalService/DeletePhoto"
	// JournalServiceResetAllDataProcedure is the fully-qualified name of the JournalService's ResetAllData RPC.
	JournalServiceResetAllDataProcedure       = "/cocon.v1.JournalService/ResetAllData"
	// JournalServiceListBucketItemsProcedure is the fully-qualified name of the JournalService's ListBucketItems RPC.
	JournalServiceListBucketItemsProcedure    = "/cocon.v1.JournalService/ListBucketItems"
	// JournalServiceAddBucketItemProcedure is the fully-qualified name of the JournalService's AddBucketItem RPC.
	JournalServiceAddBucketItemProcedure      = "/cocon.v1.JournalService/AddBucketItem"
	// JournalServiceToggleBucketItemProcedure is the fully-qualified name of the JournalService's ToggleBucketItem RPC.
	JournalServiceToggleBucketItemProcedure   = "/cocon.v1.JournalService/ToggleBucketItem"
	// JournalServiceDeleteBucketItemProcedure is the fully-qualified name of the JournalService's DeleteBucketItem RPC.
	JournalServiceDeleteBucketItemProcedure   = "/cocon.v1.JournalService/DeleteBucketItem"
	// JournalServiceSuggestRepliesProcedure is the fully-qualified name of the JournalService's SuggestReplies RPC.
	JournalServiceSuggestRepliesProcedure     = "/cocon.v1.JournalService/SuggestReplies"
	// JournalServiceExtractSongDetailsProcedure is the fully-qualified name of the JournalService's ExtractSongDetails RPC.
	JournalServiceExtractSongDetailsProcedure = "/cocon.v1.JournalService/ExtractSongDetails"
)

// PublicProcedures can be called without a bearer token.
var PublicProcedures = []string{
	JournalServiceGetStatusProcedure,
	JournalServiceLoginProcedure,
}

// JournalServiceClient is a client for the cocon.v1.JournalService service.
type JournalServiceClient interface {
	GetStatus(context.Context, *connect.Request[api.GetStatusRequest]) (*connect.Response[api.GetStatusResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
	AddEvent(context.Context, *connect.Request[api.AddEventRequest]) (*connect.Response[api.EventResponse], error)
	UpdateEvent(context.Context, *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.EventResponse], error)
	DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error)
	ListLogs(context.Context, *connect.Request[api.ListLogsRequest]) (*connect.Response[api.ListLogsResponse], error)
	UpsertLog(context.Context, *connect.Request[api.UpsertLogRequest]) (*connect.Response[api.LogResponse], error)
	AppendNote(context.Context, *connect.Request[api.AppendNoteRequest]) (*connect.Response[api.LogResponse], error)
	DeleteNote(context.Context, *connect.Request[api.DeleteNoteRequest]) (*connect.Response[api.LogResponse], error)
	ClearLog(context.Context, *connect.Request[api.ClearLogRequest]) (*connect.Response[api.ClearLogResponse], error)
	UploadPhoto(context.Context, *connect.Request[api.UploadPhotoRequest]) (*connect.Response[api.LogResponse], error)
	DeletePhoto(context.Context, *connect.Request[api.DeletePhotoRequest]) (*connect.Response[api.LogResponse], error)
	ResetAllData(context.Context, *connect.Request[api.ResetAllDataRequest]) (*connect.Response[api.ResetAllDataResponse], error)
	ListBucketItems(context.Context, *connect.Request[api.ListBucketItemsRequest]) (*connect.Response[api.ListBucketItemsResponse], error)
	AddBucketItem(context.Context, *connect.Request[api.AddBucketItemRequest]) (*connect.Response[api.BucketItemResponse], error)
	ToggleBucketItem(context.Context, *connect.Request[api.ToggleBucketItemRequest]) (*connect.Response[api.BucketItemResponse], error)
	DeleteBucketItem(context.Context, *connect.Request[api.DeleteBucketItemRequest]) (*connect.Response[api.DeleteBucketItemResponse], error)
	SuggestReplies(context.Context, *connect.Request[api.SuggestRepliesRequest]) (*connect.Response[api.SuggestRepliesResponse], error)
	ExtractSongDetails(context.Context, *connect.Request[api.ExtractSongDetailsRequest]) (*connect.Response[api.ExtractSongDetailsResponse], error)
}

// NewJournalServiceClient constructs a client for the cocon.v1.JournalService service. By
// default it uses the Connect protocol with the JSON codec.
//
// The URL supplied here should be the base URL for the server (for example,
// http://localhost:8080).
func NewJournalServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) JournalServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &journalServiceClient{
		getStatus: connect.NewClient[api.GetStatusRequest, api.GetStatusResponse](
			httpClient,
			baseURL+JournalServiceGetStatusProcedure,
			opts...,
		),
		login: connect.NewClient[api.LoginRequest, api.LoginResponse](
			httpClient,
			baseURL+JournalServiceLoginProcedure,
			opts...,
		),
		listEvents: connect.NewClient[api.ListEventsRequest, api.ListEventsResponse](
			httpClient,
			baseURL+JournalServiceListEventsProcedure,
			opts...,
		),
		addEvent: connect.NewClient[api.AddEventRequest, api.EventResponse](
			httpClient,
			baseURL+JournalServiceAddEventProcedure,
			opts...,
		),
		updateEvent: connect.NewClient[api.UpdateEventRequest, api.EventResponse](
			httpClient,
			baseURL+JournalServiceUpdateEventProcedure,
			opts...,
		),
		deleteEvent: connect.NewClient[api.DeleteEventRequest, api.DeleteEventResponse](
			httpClient,
			baseURL+JournalServiceDeleteEventProcedure,
			opts...,
		),
		listLogs: connect.NewClient[api.ListLogsRequest, api.ListLogsResponse](
			httpClient,
			baseURL+JournalServiceListLogsProcedure,
			opts...,
		),
		upsertLog: connect.NewClient[api.UpsertLogRequest, api.LogResponse](
			httpClient,
			baseURL+JournalServiceUpsertLogProcedure,
			opts...,
		),
		appendNote: connect.NewClient[api.AppendNoteRequest, api.LogResponse](
			httpClient,
			baseURL+JournalServiceAppendNoteProcedure,
			opts...,
		),
		deleteNote: connect.NewClient[api.DeleteNoteRequest, api.LogResponse](
			httpClient,
			baseURL+JournalServiceDeleteNoteProcedure,
			opts...,
		),
		clearLog: connect.NewClient[api.ClearLogRequest, api.ClearLogResponse](
			httpClient,
			baseURL+JournalServiceClearLogProcedure,
			opts...,
		),
		uploadPhoto: connect.NewClient[api.UploadPhotoRequest, api.LogResponse](
			httpClient,
			baseURL+JournalServiceUploadPhotoProcedure,
			opts...,
		),
		deletePhoto: connect.NewClient[api.DeletePhotoRequest, api.LogResponse](
			httpClient,
			baseURL+JournalServiceDeletePhotoProcedure,
			opts...,
		),
		resetAllData: connect.NewClient[api.ResetAllDataRequest, api.ResetAllDataResponse](
			httpClient,
			baseURL+JournalServiceResetAllDataProcedure,
			opts...,
		),
		listBucketItems: connect.NewClient[api.ListBucketItemsRequest, api.ListBucketItemsResponse](
			httpClient,
			baseURL+JournalServiceListBucketItemsProcedure,
			opts...,
		),
		addBucketItem: connect.NewClient[api.AddBucketItemRequest, api.BucketItemResponse](
			httpClient,
			baseURL+JournalServiceAddBucketItemProcedure,
			opts...,
		),
		toggleBucketItem: connect.NewClient[api.ToggleBucketItemRequest, api.BucketItemResponse](
			httpClient,
			baseURL+JournalServiceToggleBucketItemProcedure,
			opts...,
		),
		deleteBucketItem: connect.NewClient[api.DeleteBucketItemRequest, api.DeleteBucketItemResponse](
			httpClient,
			baseURL+JournalServiceDeleteBucketItemProcedure,
			opts...,
		),
		suggestReplies: connect.NewClient[api.SuggestRepliesRequest, api.SuggestRepliesResponse](
			httpClient,
			baseURL+JournalServiceSuggestRepliesProcedure,
			opts...,
		),
		extractSongDetails: connect.NewClient[api.ExtractSongDetailsRequest, api.ExtractSongDetailsResponse](
			httpClient,
			baseURL+JournalServiceExtractSongDetailsProcedure,
			opts...,
		),
	}
}

// journalServiceClient implements JournalServiceClient.
type journalServiceClient struct {
	getStatus          *connect.Client[api.GetStatusRequest, api.GetStatusResponse]
	login              *connect.Client[api.LoginRequest, api.LoginResponse]
	listEvents         *connect.Client[api.ListEventsRequest, api.ListEventsResponse]
	addEvent           *connect.Client[api.AddEventRequest, api.EventResponse]
	updateEvent        *connect.Client[api.UpdateEventRequest, api.EventResponse]
	deleteEvent        *connect.Client[api.DeleteEventRequest, api.DeleteEventResponse]
	listLogs           *connect.Client[api.ListLogsRequest, api.ListLogsResponse]
	upsertLog          *connect.Client[api.UpsertLogRequest, api.LogResponse]
	appendNote         *connect.Client[api.AppendNoteRequest, api.LogResponse]
	deleteNote         *connect.Client[api.DeleteNoteRequest, api.LogResponse]
	clearLog           *connect.Client[api.ClearLogRequest, api.ClearLogResponse]
	uploadPhoto        *connect.Client[api.UploadPhotoRequest, api.LogResponse]
	deletePhoto        *connect.Client[api.DeletePhotoRequest, api.LogResponse]
	resetAllData       *connect.Client[api.ResetAllDataRequest, api.ResetAllDataResponse]
	listBucketItems    *connect.Client[api.ListBucketItemsRequest, api.ListBucketItemsResponse]
	addBucketItem      *connect.Client[api.AddBucketItemRequest, api.BucketItemResponse]
	toggleBucketItem   *connect.Client[api.ToggleBucketItemRequest, api.BucketItemResponse]
	deleteBucketItem   *connect.Client[api.DeleteBucketItemRequest, api.DeleteBucketItemResponse]
	suggestReplies     *connect.Client[api.SuggestRepliesRequest, api.SuggestRepliesResponse]
	extractSongDetails *connect.Client[api.ExtractSongDetailsRequest, api.ExtractSongDetailsResponse]
}

// GetStatus calls cocon.v1.JournalService.GetStatus.
func (c *journalServiceClient) GetStatus(ctx context.Context, req *connect.Request[api.GetStatusRequest]) (*connect.Response[api.GetStatusResponse], error) {
	return c.getStatus.CallUnary(ctx, req)
}

// Login calls cocon.v1.JournalService.Login.
func (c *journalServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

// ListEvents calls cocon.v1.JournalService.ListEvents.
func (c *journalServiceClient) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

// AddEvent calls cocon.v1.JournalService.AddEvent.
func (c *journalServiceClient) AddEvent(ctx context.Context, req *connect.Request[api.AddEventRequest]) (*connect.Response[api.EventResponse], error) {
	return c.addEvent.CallUnary(ctx, req)
}

// UpdateEvent calls cocon.v1.JournalService.UpdateEvent.
func (c *journalServiceClient) UpdateEvent(ctx context.Context, req *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.EventResponse], error) {
	return c.updateEvent.CallUnary(ctx, req)
}

// DeleteEvent calls cocon.v1.JournalService.DeleteEvent.
func (c *journalServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}

// ListLogs calls cocon.v1.JournalService.ListLogs.
func (c *journalServiceClient) ListLogs(ctx context.Context, req *connect.Request[api.ListLogsRequest]) (*connect.Response[api.ListLogsResponse], error) {
	return c.listLogs.CallUnary(ctx, req)
}

// UpsertLog calls cocon.v1.JournalService.UpsertLog.
func (c *journalServiceClient) UpsertLog(ctx context.Context, req *connect.Request[api.UpsertLogRequest]) (*connect.Response[api.LogResponse], error) {
	return c.upsertLog.CallUnary(ctx, req)
}

// AppendNote calls cocon.v1.JournalService.AppendNote.
func (c *journalServiceClient) AppendNote(ctx context.Context, req *connect.Request[api.AppendNoteRequest]) (*connect.Response[api.LogResponse], error) {
	return c.appendNote.CallUnary(ctx, req)
}

// DeleteNote calls cocon.v1.JournalService.DeleteNote.
func (c *journalServiceClient) DeleteNote(ctx context.Context, req *connect.Request[api.DeleteNoteRequest]) (*connect.Response[api.LogResponse], error) {
	return c.deleteNote.CallUnary(ctx, req)
}

// ClearLog calls cocon.v1.JournalService.ClearLog.
func (c *journalServiceClient) ClearLog(ctx context.Context, req *connect.Request[api.ClearLogRequest]) (*connect.Response[api.ClearLogResponse], error) {
	return c.clearLog.CallUnary(ctx, req)
}

// UploadPhoto calls cocon.v1.JournalService.UploadPhoto.
func (c *journalServiceClient) UploadPhoto(ctx context.Context, req *connect.Request[api.UploadPhotoRequest]) (*connect.Response[api.LogResponse], error) {
	return c.uploadPhoto.CallUnary(ctx, req)
}

// DeletePhoto calls cocon.v1.JournalService.DeletePhoto.
func (c *journalServiceClient) DeletePhoto(ctx context.Context, req *connect.Request[api.DeletePhotoRequest]) (*connect.Response[api.LogResponse], error) {
	return c.deletePhoto.CallUnary(ctx, req)
}

// ResetAllData calls cocon.v1.JournalService.ResetAllData.
func (c *journalServiceClient) ResetAllData(ctx context.Context, req *connect.Request[api.ResetAllDataRequest]) (*connect.Response[api.ResetAllDataResponse], error) {
	return c.resetAllData.CallUnary(ctx, req)
}

// ListBucketItems calls cocon.v1.JournalService.ListBucketItems.
func (c *journalServiceClient) ListBucketItems(ctx context.Context, req *connect.Request[api.ListBucketItemsRequest]) (*connect.Response[api.ListBucketItemsResponse], error) {
	return c.listBucketItems.CallUnary(ctx, req)
}

// AddBucketItem calls cocon.v1.JournalService.AddBucketItem.
func (c *journalServiceClient) AddBucketItem(ctx context.Context, req *connect.Request[api.AddBucketItemRequest]) (*connect.Response[api.BucketItemResponse], error) {
	return c.addBucketItem.CallUnary(ctx, req)
}

// ToggleBucketItem calls cocon.v1.JournalService.ToggleBucketItem.
func (c *journalServiceClient) ToggleBucketItem(ctx context.Context, req *connect.Request[api.ToggleBucketItemRequest]) (*connect.Response[api.BucketItemResponse], error) {
	return c.toggleBucketItem.CallUnary(ctx, req)
}

// DeleteBucketItem calls cocon.v1.JournalService.DeleteBucketItem.
func (c *journalServiceClient) DeleteBucketItem(ctx context.Context, req *connect.Request[api.DeleteBucketItemRequest]) (*connect.Response[api.DeleteBucketItemResponse], error) {
	return c.deleteBucketItem.CallUnary(ctx, req)
}

// SuggestReplies calls cocon.v1.JournalService.SuggestReplies.
func (c *journalServiceClient) SuggestReplies(ctx context.Context, req *connect.Request[api.SuggestRepliesRequest]) (*connect.Response[api.SuggestRepliesResponse], error) {
	return c.suggestReplies.CallUnary(ctx, req)
}

// ExtractSongDetails calls cocon.v1.JournalService.ExtractSongDetails.
func (c *journalServiceClient) ExtractSongDetails(ctx context.Context, req *connect.Request[api.ExtractSongDetailsRequest]) (*connect.Response[api.ExtractSongDetailsResponse], error) {
	return c.extractSongDetails.CallUnary(ctx, req)
}

// JournalServiceHandler is an implementation of the cocon.v1.JournalService service.
type JournalServiceHandler interface {
	GetStatus(context.Context, *connect.Request[api.GetStatusRequest]) (*connect.Response[api.GetStatusResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
	AddEvent(context.Context, *connect.Request[api.AddEventRequest]) (*connect.Response[api.EventResponse], error)
	UpdateEvent(context.Context, *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.EventResponse], error)
	DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error)
	ListLogs(context.Context, *connect.Request[api.ListLogsRequest]) (*connect.Response[api.ListLogsResponse], error)
	UpsertLog(context.Context, *connect.Request[api.UpsertLogRequest]) (*connect.Response[api.LogResponse], error)
	AppendNote(context.Context, *connect.Request[api.AppendNoteRequest]) (*connect.Response[api.LogResponse], error)
	DeleteNote(context.Context, *connect.Request[api.DeleteNoteRequest]) (*connect.Response[api.LogResponse], error)
	ClearLog(context.Context, *connect.Request[api.ClearLogRequest]) (*connect.Response[api.ClearLogResponse], error)
	UploadPhoto(context.Context, *connect.Request[api.UploadPhotoRequest]) (*connect.Response[api.LogResponse], error)
	DeletePhoto(context.Context, *connect.Request[api.DeletePhotoRequest]) (*connect.Response[api.LogResponse], error)
	ResetAllData(context.Context, *connect.Request[api.ResetAllDataRequest]) (*connect.Response[api.ResetAllDataResponse], error)
	ListBucketItems(context.Context, *connect.Request[api.ListBucketItemsRequest]) (*connect.Response[api.ListBucketItemsResponse], error)
	AddBucketItem(context.Context, *connect.Request[api.AddBucketItemRequest]) (*connect.Response[api.BucketItemResponse], error)
	ToggleBucketItem(context.Context, *connect.Request[api.ToggleBucketItemRequest]) (*connect.Response[api.BucketItemResponse], error)
	DeleteBucketItem(context.Context, *connect.Request[api.DeleteBucketItemRequest]) (*connect.Response[api.DeleteBucketItemResponse], error)
	SuggestReplies(context.Context, *connect.Request[api.SuggestRepliesRequest]) (*connect.Response[api.SuggestRepliesResponse], error)
	ExtractSongDetails(context.Context, *connect.Request[api.ExtractSongDetailsRequest]) (*connect.Response[api.ExtractSongDetailsResponse], error)
}

// NewJournalServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
func NewJournalServiceHandler(svc JournalServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	journalServiceGetStatusHandler := connect.NewUnaryHandler(
		JournalServiceGetStatusProcedure,
		svc.GetStatus,
		opts...,
	)
	journalServiceLoginHandler := connect.NewUnaryHandler(
		JournalServiceLoginProcedure,
		svc.Login,
		opts...,
	)
	journalServiceListEventsHandler := connect.NewUnaryHandler(
		JournalServiceListEventsProcedure,
		svc.ListEvents,
		opts...,
	)
	journalServiceAddEventHandler := connect.NewUnaryHandler(
		JournalServiceAddEventProcedure,
		svc.AddEvent,
		opts...,
	)
	journalServiceUpdateEventHandler := connect.NewUnaryHandler(
		JournalServiceUpdateEventProcedure,
		svc.UpdateEvent,
		opts...,
	)
	journalServiceDeleteEventHandler := connect.NewUnaryHandler(
		JournalServiceDeleteEventProcedure,
		svc.DeleteEvent,
		opts...,
	)
	journalServiceListLogsHandler := connect.NewUnaryHandler(
		JournalServiceListLogsProcedure,
		svc.ListLogs,
		opts...,
	)
	journalServiceUpsertLogHandler := connect.NewUnaryHandler(
		JournalServiceUpsertLogProcedure,
		svc.UpsertLog,
		opts...,
	)
	journalServiceAppendNoteHandler := connect.NewUnaryHandler(
		JournalServiceAppendNoteProcedure,
		svc.AppendNote,
		opts...,
	)
	journalServiceDeleteNoteHandler := connect.NewUnaryHandler(
		JournalServiceDeleteNoteProcedure,
		svc.DeleteNote,
		opts...,
	)
	journalServiceClearLogHandler := connect.NewUnaryHandler(
		JournalServiceClearLogProcedure,
		svc.ClearLog,
		opts...,
	)
	journalServiceUploadPhotoHandler := connect.NewUnaryHandler(
		JournalServiceUploadPhotoProcedure,
		svc.UploadPhoto,
		opts...,
	)
	journalServiceDeletePhotoHandler := connect.NewUnaryHandler(
		JournalServiceDeletePhotoProcedure,
		svc.DeletePhoto,
		opts...,
	)
	journalServiceResetAllDataHandler := connect.NewUnaryHandler(
		JournalServiceResetAllDataProcedure,
		svc.ResetAllData,
		opts...,
	)
	journalServiceListBucketItemsHandler := connect.NewUnaryHandler(
		JournalServiceListBucketItemsProcedure,
		svc.ListBucketItems,
		opts...,
	)
	journalServiceAddBucketItemHandler := connect.NewUnaryHandler(
		JournalServiceAddBucketItemProcedure,
		svc.AddBucketItem,
		opts...,
	)
	journalServiceToggleBucketItemHandler := connect.NewUnaryHandler(
		JournalServiceToggleBucketItemProcedure,
		svc.ToggleBucketItem,
		opts...,
	)
	journalServiceDeleteBucketItemHandler := connect.NewUnaryHandler(
		JournalServiceDeleteBucketItemProcedure,
		svc.DeleteBucketItem,
		opts...,
	)
	journalServiceSuggestRepliesHandler := connect.NewUnaryHandler(
		JournalServiceSuggestRepliesProcedure,
		svc.SuggestReplies,
		opts...,
	)
	journalServiceExtractSongDetailsHandler := connect.NewUnaryHandler(
		JournalServiceExtractSongDetailsProcedure,
		svc.ExtractSongDetails,
		opts...,
	)
	return "/cocon.v1.JournalService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case JournalServiceGetStatusProcedure:
			journalServiceGetStatusHandler.ServeHTTP(w, r)
		case JournalServiceLoginProcedure:
			journalServiceLoginHandler.ServeHTTP(w, r)
		case JournalServiceListEventsProcedure:
			journalServiceListEventsHandler.ServeHTTP(w, r)
		case JournalServiceAddEventProcedure:
			journalServiceAddEventHandler.ServeHTTP(w, r)
		case JournalServiceUpdateEventProcedure:
			journalServiceUpdateEventHandler.ServeHTTP(w, r)
		case JournalServiceDeleteEventProcedure:
			journalServiceDeleteEventHandler.ServeHTTP(w, r)
		case JournalServiceListLogsProcedure:
			journalServiceListLogsHandler.ServeHTTP(w, r)
		case JournalServiceUpsertLogProcedure:
			journalServiceUpsertLogHandler.ServeHTTP(w, r)
		case JournalServiceAppendNoteProcedure:
			journalServiceAppendNoteHandler.ServeHTTP(w, r)
		case JournalServiceDeleteNoteProcedure:
			journalServiceDeleteNoteHandler.ServeHTTP(w, r)
		case JournalServiceClearLogProcedure:
			journalServiceClearLogHandler.ServeHTTP(w, r)
		case JournalServiceUploadPhotoProcedure:
			journalServiceUploadPhotoHandler.ServeHTTP(w, r)
		case JournalServiceDeletePhotoProcedure:
			journalServiceDeletePhotoHandler.ServeHTTP(w, r)
		case JournalServiceResetAllDataProcedure:
			journalServiceResetAllDataHandler.ServeHTTP(w, r)
		case JournalServiceListBucketItemsProcedure:
			journalServiceListBucketItemsHandler.ServeHTTP(w, r)
		case JournalServiceAddBucketItemProcedure:
			journalServiceAddBucketItemHandler.ServeHTTP(w, r)
		case JournalServiceToggleBucketItemProcedure:
			journalServiceToggleBucketItemHandler.ServeHTTP(w, r)
		case JournalServiceDeleteBucketItemProcedure:
			journalServiceDeleteBucketItemHandler.ServeHTTP(w, r)
		case JournalServiceSuggestRepliesProcedure:
			journalServiceSuggestRepliesHandler.ServeHTTP(w, r)
		case JournalServiceExtractSongDetailsProcedure:
			journalServiceExtractSongDetailsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedJournalServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedJournalServiceHandler struct{}

func (UnimplementedJournalServiceHandler) GetStatus(context.Context, *connect.Request[api.GetStatusRequest]) (*connect.Response[api.GetStatusResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.GetStatus is not implemented"))
}

func (UnimplementedJournalServiceHandler) Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.Login is not implemented"))
}

func (UnimplementedJournalServiceHandler) ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.ListEvents is not implemented"))
}

func (UnimplementedJournalServiceHandler) AddEvent(context.Context, *connect.Request[api.AddEventRequest]) (*connect.Response[api.EventResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.AddEvent is not implemented"))
}

func (UnimplementedJournalServiceHandler) UpdateEvent(context.Context, *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.EventResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.UpdateEvent is not implemented"))
}

func (UnimplementedJournalServiceHandler) DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.DeleteEvent is not implemented"))
}

func (UnimplementedJournalServiceHandler) ListLogs(context.Context, *connect.Request[api.ListLogsRequest]) (*connect.Response[api.ListLogsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.ListLogs is not implemented"))
}

func (UnimplementedJournalServiceHandler) UpsertLog(context.Context, *connect.Request[api.UpsertLogRequest]) (*connect.Response[api.LogResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.UpsertLog is not implemented"))
}

func (UnimplementedJournalServiceHandler) AppendNote(context.Context, *connect.Request[api.AppendNoteRequest]) (*connect.Response[api.LogResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.AppendNote is not implemented"))
}

func (UnimplementedJournalServiceHandler) DeleteNote(context.Context, *connect.Request[api.DeleteNoteRequest]) (*connect.Response[api.LogResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.DeleteNote is not implemented"))
}

func (UnimplementedJournalServiceHandler) ClearLog(context.Context, *connect.Request[api.ClearLogRequest]) (*connect.Response[api.ClearLogResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.ClearLog is not implemented"))
}

func (UnimplementedJournalServiceHandler) UploadPhoto(context.Context, *connect.Request[api.UploadPhotoRequest]) (*connect.Response[api.LogResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.UploadPhoto is not implemented"))
}

func (UnimplementedJournalServiceHandler) DeletePhoto(context.Context, *connect.Request[api.DeletePhotoRequest]) (*connect.Response[api.LogResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.DeletePhoto is not implemented"))
}

func (UnimplementedJournalServiceHandler) ResetAllData(context.Context, *connect.Request[api.ResetAllDataRequest]) (*connect.Response[api.ResetAllDataResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.ResetAllData is not implemented"))
}

func (UnimplementedJournalServiceHandler) ListBucketItems(context.Context, *connect.Request[api.ListBucketItemsRequest]) (*connect.Response[api.ListBucketItemsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.ListBucketItems is not implemented"))
}

func (UnimplementedJournalServiceHandler) AddBucketItem(context.Context, *connect.Request[api.AddBucketItemRequest]) (*connect.Response[api.BucketItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.AddBucketItem is not implemented"))
}

func (UnimplementedJournalServiceHandler) ToggleBucketItem(context.Context, *connect.Request[api.ToggleBucketItemRequest]) (*connect.Response[api.BucketItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.ToggleBucketItem is not implemented"))
}

func (UnimplementedJournalServiceHandler) DeleteBucketItem(context.Context, *connect.Request[api.DeleteBucketItemRequest]) (*connect.Response[api.DeleteBucketItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.DeleteBucketItem is not implemented"))
}

func (UnimplementedJournalServiceHandler) SuggestReplies(context.Context, *connect.Request[api.SuggestRepliesRequest]) (*connect.Response[api.SuggestRepliesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.SuggestReplies is not implemented"))
}

func (UnimplementedJournalServiceHandler) ExtractSongDetails(context.Context, *connect.Request[api.ExtractSongDetailsRequest]) (*connect.Response[api.ExtractSongDetailsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("cocon.v1.JournalService.ExtractSongDetails is not implemented"))
}
