// Package api defines the messages exchanged with the JournalService.
//
// Messages are plain structs encoded as JSON with camelCase field names.
// Per-role values are carried as {"editor": ..., "partner": ...} objects
// where an unset role is null.
package api

// Event is a journal event. StartDate and EndDate are empty for the evergreen event.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	IsEvergreen bool   `json:"isEvergreen"`
	CreatedBy   string `json:"createdBy"`
	CreatedAt   int64  `json:"createdAt"`
}

// Note is one entry in a role's note list.
type Note struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// Song is a song-of-the-day pick.
type Song struct {
	Link   string `json:"link"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Photo is a role's photo for a day.
type Photo struct {
	URL  string `json:"url"`
	Hint string `json:"hint"`
}

// RoleMap holds one optional value per role.
type RoleMap[T any] struct {
	Editor  *T `json:"editor"`
	Partner *T `json:"partner"`
}

// DailyLog is one day of an event. ID is the opaque "eventId_date" label.
type DailyLog struct {
	ID               string          `json:"id"`
	EventID          string          `json:"eventId"`
	Date             string          `json:"date"`
	EditorNotes      []Note          `json:"editorNotes"`
	PartnerNotes     []Note          `json:"partnerNotes"`
	PromptForPartner string          `json:"promptForPartner"`
	PromptForEditor  string          `json:"promptForEditor"`
	Moods            RoleMap[string] `json:"moods"`
	Songs            RoleMap[Song]   `json:"songs"`
	Photos           RoleMap[Photo]  `json:"photos"`
	UpdatedAt        int64           `json:"updatedAt"`
}

// LogPatch is a partial log update. Omitted fields are left alone; a role key
// mapped to null clears that role's slot; a notes list replaces the role's list.
type LogPatch struct {
	EditorNotes      *[]string          `json:"editorNotes,omitempty"`
	PartnerNotes     *[]string          `json:"partnerNotes,omitempty"`
	PromptForPartner *string            `json:"promptForPartner,omitempty"`
	PromptForEditor  *string            `json:"promptForEditor,omitempty"`
	Moods            map[string]*string `json:"moods,omitempty"`
	Songs            map[string]*Song   `json:"songs,omitempty"`
	Photos           map[string]*Photo  `json:"photos,omitempty"`
}

// BucketListItem is an entry on the shared bucket list.
type BucketListItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"`
	CreatedBy string `json:"createdBy"`
}

type GetStatusRequest struct{}

type GetStatusResponse struct {
	CodesConfigured bool `json:"codesConfigured"`
}

type LoginRequest struct {
	Code string `json:"code"`
}

type LoginResponse struct {
	Role  string `json:"role"`
	Token string `json:"token"`
}

type ListEventsRequest struct{}

type ListEventsResponse struct {
	Events []Event `json:"events"`
}

type AddEventRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type UpdateEventRequest struct {
	EventID     string  `json:"eventId"`
	Name        *string `json:"name,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	IsEvergreen *bool   `json:"isEvergreen,omitempty"`
}

type EventResponse struct {
	Event Event `json:"event"`
}

type DeleteEventRequest struct {
	EventID string `json:"eventId"`
}

type DeleteEventResponse struct{}

type ListLogsRequest struct {
	EventID string `json:"eventId"`
}

type ListLogsResponse struct {
	Logs []DailyLog `json:"logs"`
}

type UpsertLogRequest struct {
	EventID string   `json:"eventId"`
	Date    string   `json:"date"`
	Patch   LogPatch `json:"patch"`
}

type AppendNoteRequest struct {
	EventID string `json:"eventId"`
	Date    string `json:"date"`
	Text    string `json:"text"`
}

type DeleteNoteRequest struct {
	EventID string `json:"eventId"`
	Date    string `json:"date"`
	NoteID  string `json:"noteId"`
}

type LogResponse struct {
	Log DailyLog `json:"log"`
}

type ClearLogRequest struct {
	EventID string `json:"eventId"`
	Date    string `json:"date"`
}

type ClearLogResponse struct{}

// UploadPhotoRequest carries the photo bytes inline (base64 in JSON).
type UploadPhotoRequest struct {
	EventID     string `json:"eventId"`
	Date        string `json:"date"`
	ContentType string `json:"contentType"`
	Hint        string `json:"hint,omitempty"`
	Data        []byte `json:"data"`
}

type DeletePhotoRequest struct {
	EventID string `json:"eventId"`
	Date    string `json:"date"`
}

type ResetAllDataRequest struct{}

type ResetAllDataResponse struct{}

type ListBucketItemsRequest struct{}

type ListBucketItemsResponse struct {
	Items []BucketListItem `json:"items"`
}

type AddBucketItemRequest struct {
	Text string `json:"text"`
}

type ToggleBucketItemRequest struct {
	ItemID    string `json:"itemId"`
	Completed bool   `json:"completed"`
}

type BucketItemResponse struct {
	Item BucketListItem `json:"item"`
}

type DeleteBucketItemRequest struct {
	ItemID string `json:"itemId"`
}

type DeleteBucketItemResponse struct{}

type SuggestRepliesRequest struct {
	Note string `json:"note"`
}

type SuggestRepliesResponse struct {
	SuggestedReplies []string `json:"suggestedReplies"`
}

type ExtractSongDetailsRequest struct {
	URL string `json:"url"`
}

type ExtractSongDetailsResponse struct {
	SongTitle  string `json:"songTitle"`
	SongArtist string `json:"songArtist"`
}
