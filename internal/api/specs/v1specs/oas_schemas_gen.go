// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

// Ref: #/components/schemas/Asset
type Asset struct {
	URL      string       `json:"url"`
	PublicId OptString    `json:"publicId"`
	Type     OptAssetType `json:"type"`
}

// GetURL returns the value of URL.
func (s *Asset) GetURL() string {
	return s.URL
}

// GetPublicId returns the value of PublicId.
func (s *Asset) GetPublicId() OptString {
	return s.PublicId
}

// GetType returns the value of Type.
func (s *Asset) GetType() OptAssetType {
	return s.Type
}

// SetURL sets the value of URL.
func (s *Asset) SetURL(val string) {
	s.URL = val
}

// SetPublicId sets the value of PublicId.
func (s *Asset) SetPublicId(val OptString) {
	s.PublicId = val
}

// SetType sets the value of Type.
func (s *Asset) SetType(val OptAssetType) {
	s.Type = val
}

// Ref: #/components/schemas/AssetType
type AssetType string

const (
	AssetTypeImage AssetType = "image"
	AssetTypeVideo AssetType = "video"
)

// AllValues returns all AssetType values.
func (AssetType) AllValues() []AssetType {
	return []AssetType{
		AssetTypeImage,
		AssetTypeVideo,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s AssetType) MarshalText() ([]byte, error) {
	switch s {
	case AssetTypeImage:
		return []byte(s), nil
	case AssetTypeVideo:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *AssetType) UnmarshalText(data []byte) error {
	switch AssetType(data) {
	case AssetTypeImage:
		*s = AssetTypeImage
		return nil
	case AssetTypeVideo:
		*s = AssetTypeVideo
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/BackfillResult
type BackfillResult struct {
	CampaignsUpdated int `json:"campaignsUpdated"`
	ContactsAdded    int `json:"contactsAdded"`
}

// GetCampaignsUpdated returns the value of CampaignsUpdated.
func (s *BackfillResult) GetCampaignsUpdated() int {
	return s.CampaignsUpdated
}

// GetContactsAdded returns the value of ContactsAdded.
func (s *BackfillResult) GetContactsAdded() int {
	return s.ContactsAdded
}

// SetCampaignsUpdated sets the value of CampaignsUpdated.
func (s *BackfillResult) SetCampaignsUpdated(val int) {
	s.CampaignsUpdated = val
}

// SetContactsAdded sets the value of ContactsAdded.
func (s *BackfillResult) SetContactsAdded(val int) {
	s.ContactsAdded = val
}

type BearerAuth struct {
	Token string
	Roles []string
}

// GetToken returns the value of Token.
func (s *BearerAuth) GetToken() string {
	return s.Token
}

// GetRoles returns the value of Roles.
func (s *BearerAuth) GetRoles() []string {
	return s.Roles
}

// SetToken sets the value of Token.
func (s *BearerAuth) SetToken(val string) {
	s.Token = val
}

// SetRoles sets the value of Roles.
func (s *BearerAuth) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/CallsChannel
type CallsChannel struct {
	Enabled                bool   `json:"enabled"`
	MaxCallDurationSeconds OptInt `json:"maxCallDurationSeconds"`
}

// GetEnabled returns the value of Enabled.
func (s *CallsChannel) GetEnabled() bool {
	return s.Enabled
}

// GetMaxCallDurationSeconds returns the value of MaxCallDurationSeconds.
func (s *CallsChannel) GetMaxCallDurationSeconds() OptInt {
	return s.MaxCallDurationSeconds
}

// SetEnabled sets the value of Enabled.
func (s *CallsChannel) SetEnabled(val bool) {
	s.Enabled = val
}

// SetMaxCallDurationSeconds sets the value of MaxCallDurationSeconds.
func (s *CallsChannel) SetMaxCallDurationSeconds(val OptInt) {
	s.MaxCallDurationSeconds = val
}

// Ref: #/components/schemas/Campaign
type Campaign struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	Description     Description        `json:"description"`
	PreviewText     OptString          `json:"previewText"`
	AiDescription   OptString          `json:"aiDescription"`
	ToneOfVoice     OptString          `json:"toneOfVoice"`
	Channels        Channels           `json:"channels"`
	ChannelContent  ChannelContent     `json:"channelContent"`
	Assets          []Asset            `json:"assets"`
	AudioUrls       CampaignAudio      `json:"audioUrls"`
	Onboarding      Onboarding         `json:"onboarding"`
	ContactsFile    OptContactsFile    `json:"contactsFile"`
	Contacts        []Contact          `json:"contacts"`
	ContactsSummary OptContactsSummary `json:"contactsSummary"`
	ContactCount    OptInt             `json:"contactCount"`
	Status          CampaignStatus     `json:"status"`
	LaunchedAt      OptDateTime        `json:"launchedAt"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// GetID returns the value of ID.
func (s *Campaign) GetID() uuid.UUID {
	return s.ID
}

// GetTitle returns the value of Title.
func (s *Campaign) GetTitle() string {
	return s.Title
}

// GetDescription returns the value of Description.
func (s *Campaign) GetDescription() Description {
	return s.Description
}

// GetPreviewText returns the value of PreviewText.
func (s *Campaign) GetPreviewText() OptString {
	return s.PreviewText
}

// GetAiDescription returns the value of AiDescription.
func (s *Campaign) GetAiDescription() OptString {
	return s.AiDescription
}

// GetToneOfVoice returns the value of ToneOfVoice.
func (s *Campaign) GetToneOfVoice() OptString {
	return s.ToneOfVoice
}

// GetChannels returns the value of Channels.
func (s *Campaign) GetChannels() Channels {
	return s.Channels
}

// GetChannelContent returns the value of ChannelContent.
func (s *Campaign) GetChannelContent() ChannelContent {
	return s.ChannelContent
}

// GetAssets returns the value of Assets.
func (s *Campaign) GetAssets() []Asset {
	return s.Assets
}

// GetAudioUrls returns the value of AudioUrls.
func (s *Campaign) GetAudioUrls() CampaignAudio {
	return s.AudioUrls
}

// GetOnboarding returns the value of Onboarding.
func (s *Campaign) GetOnboarding() Onboarding {
	return s.Onboarding
}

// GetContactsFile returns the value of ContactsFile.
func (s *Campaign) GetContactsFile() OptContactsFile {
	return s.ContactsFile
}

// GetContacts returns the value of Contacts.
func (s *Campaign) GetContacts() []Contact {
	return s.Contacts
}

// GetContactsSummary returns the value of ContactsSummary.
func (s *Campaign) GetContactsSummary() OptContactsSummary {
	return s.ContactsSummary
}

// GetContactCount returns the value of ContactCount.
func (s *Campaign) GetContactCount() OptInt {
	return s.ContactCount
}

// GetStatus returns the value of Status.
func (s *Campaign) GetStatus() CampaignStatus {
	return s.Status
}

// GetLaunchedAt returns the value of LaunchedAt.
func (s *Campaign) GetLaunchedAt() OptDateTime {
	return s.LaunchedAt
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Campaign) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Campaign) GetUpdatedAt() time.Time {
	return s.UpdatedAt
}

// SetID sets the value of ID.
func (s *Campaign) SetID(val uuid.UUID) {
	s.ID = val
}

// SetTitle sets the value of Title.
func (s *Campaign) SetTitle(val string) {
	s.Title = val
}

// SetDescription sets the value of Description.
func (s *Campaign) SetDescription(val Description) {
	s.Description = val
}

// SetPreviewText sets the value of PreviewText.
func (s *Campaign) SetPreviewText(val OptString) {
	s.PreviewText = val
}

// SetAiDescription sets the value of AiDescription.
func (s *Campaign) SetAiDescription(val OptString) {
	s.AiDescription = val
}

// SetToneOfVoice sets the value of ToneOfVoice.
func (s *Campaign) SetToneOfVoice(val OptString) {
	s.ToneOfVoice = val
}

// SetChannels sets the value of Channels.
func (s *Campaign) SetChannels(val Channels) {
	s.Channels = val
}

// SetChannelContent sets the value of ChannelContent.
func (s *Campaign) SetChannelContent(val ChannelContent) {
	s.ChannelContent = val
}

// SetAssets sets the value of Assets.
func (s *Campaign) SetAssets(val []Asset) {
	s.Assets = val
}

// SetAudioUrls sets the value of AudioUrls.
func (s *Campaign) SetAudioUrls(val CampaignAudio) {
	s.AudioUrls = val
}

// SetOnboarding sets the value of Onboarding.
func (s *Campaign) SetOnboarding(val Onboarding) {
	s.Onboarding = val
}

// SetContactsFile sets the value of ContactsFile.
func (s *Campaign) SetContactsFile(val OptContactsFile) {
	s.ContactsFile = val
}

// SetContacts sets the value of Contacts.
func (s *Campaign) SetContacts(val []Contact) {
	s.Contacts = val
}

// SetContactsSummary sets the value of ContactsSummary.
func (s *Campaign) SetContactsSummary(val OptContactsSummary) {
	s.ContactsSummary = val
}

// SetContactCount sets the value of ContactCount.
func (s *Campaign) SetContactCount(val OptInt) {
	s.ContactCount = val
}

// SetStatus sets the value of Status.
func (s *Campaign) SetStatus(val CampaignStatus) {
	s.Status = val
}

// SetLaunchedAt sets the value of LaunchedAt.
func (s *Campaign) SetLaunchedAt(val OptDateTime) {
	s.LaunchedAt = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Campaign) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Campaign) SetUpdatedAt(val time.Time) {
	s.UpdatedAt = val
}

// Ref: #/components/schemas/CampaignAudio
type CampaignAudio struct {
	Voice OptString `json:"voice"`
	Calls OptString `json:"calls"`
}

// GetVoice returns the value of Voice.
func (s *CampaignAudio) GetVoice() OptString {
	return s.Voice
}

// GetCalls returns the value of Calls.
func (s *CampaignAudio) GetCalls() OptString {
	return s.Calls
}

// SetVoice sets the value of Voice.
func (s *CampaignAudio) SetVoice(val OptString) {
	s.Voice = val
}

// SetCalls sets the value of Calls.
func (s *CampaignAudio) SetCalls(val OptString) {
	s.Calls = val
}

// Ref: #/components/schemas/CampaignDetails
type CampaignDetails struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	PreviewText string        `json:"previewText"`
	AudioUrls   CampaignAudio `json:"audioUrls"`
	Assets      []Asset       `json:"assets"`
}

// GetID returns the value of ID.
func (s *CampaignDetails) GetID() uuid.UUID {
	return s.ID
}

// GetTitle returns the value of Title.
func (s *CampaignDetails) GetTitle() string {
	return s.Title
}

// GetPreviewText returns the value of PreviewText.
func (s *CampaignDetails) GetPreviewText() string {
	return s.PreviewText
}

// GetAudioUrls returns the value of AudioUrls.
func (s *CampaignDetails) GetAudioUrls() CampaignAudio {
	return s.AudioUrls
}

// GetAssets returns the value of Assets.
func (s *CampaignDetails) GetAssets() []Asset {
	return s.Assets
}

// SetID sets the value of ID.
func (s *CampaignDetails) SetID(val uuid.UUID) {
	s.ID = val
}

// SetTitle sets the value of Title.
func (s *CampaignDetails) SetTitle(val string) {
	s.Title = val
}

// SetPreviewText sets the value of PreviewText.
func (s *CampaignDetails) SetPreviewText(val string) {
	s.PreviewText = val
}

// SetAudioUrls sets the value of AudioUrls.
func (s *CampaignDetails) SetAudioUrls(val CampaignAudio) {
	s.AudioUrls = val
}

// SetAssets sets the value of Assets.
func (s *CampaignDetails) SetAssets(val []Asset) {
	s.Assets = val
}

// Editable campaign fields. Absent fields are left untouched on update.
// Ref: #/components/schemas/CampaignInput
type CampaignInput struct {
	Title              OptString        `json:"title"`
	Description        OptString        `json:"description"`
	PreviewText        OptString        `json:"previewText"`
	ToneOfVoice        OptString        `json:"toneOfVoice"`
	VoiceTranscript    OptString        `json:"voiceTranscript"`
	Channels           OptChannels      `json:"channels"`
	Assets             []Asset          `json:"assets"`
	AudioUrls          OptCampaignAudio `json:"audioUrls"`
	Onboarding         OptOnboarding    `json:"onboarding"`
	ContactsFile       OptContactsFile  `json:"contactsFile"`
	Contacts           []Contact        `json:"contacts"`
	ContactsFileAction OptString        `json:"contactsFileAction"`
}

// GetTitle returns the value of Title.
func (s *CampaignInput) GetTitle() OptString {
	return s.Title
}

// GetDescription returns the value of Description.
func (s *CampaignInput) GetDescription() OptString {
	return s.Description
}

// GetPreviewText returns the value of PreviewText.
func (s *CampaignInput) GetPreviewText() OptString {
	return s.PreviewText
}

// GetToneOfVoice returns the value of ToneOfVoice.
func (s *CampaignInput) GetToneOfVoice() OptString {
	return s.ToneOfVoice
}

// GetVoiceTranscript returns the value of VoiceTranscript.
func (s *CampaignInput) GetVoiceTranscript() OptString {
	return s.VoiceTranscript
}

// GetChannels returns the value of Channels.
func (s *CampaignInput) GetChannels() OptChannels {
	return s.Channels
}

// GetAssets returns the value of Assets.
func (s *CampaignInput) GetAssets() []Asset {
	return s.Assets
}

// GetAudioUrls returns the value of AudioUrls.
func (s *CampaignInput) GetAudioUrls() OptCampaignAudio {
	return s.AudioUrls
}

// GetOnboarding returns the value of Onboarding.
func (s *CampaignInput) GetOnboarding() OptOnboarding {
	return s.Onboarding
}

// GetContactsFile returns the value of ContactsFile.
func (s *CampaignInput) GetContactsFile() OptContactsFile {
	return s.ContactsFile
}

// GetContacts returns the value of Contacts.
func (s *CampaignInput) GetContacts() []Contact {
	return s.Contacts
}

// GetContactsFileAction returns the value of ContactsFileAction.
func (s *CampaignInput) GetContactsFileAction() OptString {
	return s.ContactsFileAction
}

// SetTitle sets the value of Title.
func (s *CampaignInput) SetTitle(val OptString) {
	s.Title = val
}

// SetDescription sets the value of Description.
func (s *CampaignInput) SetDescription(val OptString) {
	s.Description = val
}

// SetPreviewText sets the value of PreviewText.
func (s *CampaignInput) SetPreviewText(val OptString) {
	s.PreviewText = val
}

// SetToneOfVoice sets the value of ToneOfVoice.
func (s *CampaignInput) SetToneOfVoice(val OptString) {
	s.ToneOfVoice = val
}

// SetVoiceTranscript sets the value of VoiceTranscript.
func (s *CampaignInput) SetVoiceTranscript(val OptString) {
	s.VoiceTranscript = val
}

// SetChannels sets the value of Channels.
func (s *CampaignInput) SetChannels(val OptChannels) {
	s.Channels = val
}

// SetAssets sets the value of Assets.
func (s *CampaignInput) SetAssets(val []Asset) {
	s.Assets = val
}

// SetAudioUrls sets the value of AudioUrls.
func (s *CampaignInput) SetAudioUrls(val OptCampaignAudio) {
	s.AudioUrls = val
}

// SetOnboarding sets the value of Onboarding.
func (s *CampaignInput) SetOnboarding(val OptOnboarding) {
	s.Onboarding = val
}

// SetContactsFile sets the value of ContactsFile.
func (s *CampaignInput) SetContactsFile(val OptContactsFile) {
	s.ContactsFile = val
}

// SetContacts sets the value of Contacts.
func (s *CampaignInput) SetContacts(val []Contact) {
	s.Contacts = val
}

// SetContactsFileAction sets the value of ContactsFileAction.
func (s *CampaignInput) SetContactsFileAction(val OptString) {
	s.ContactsFileAction = val
}

// Ref: #/components/schemas/CampaignPage
type CampaignPage struct {
	Items      []Campaign   `json:"items"`
	NextCursor OptNilString `json:"nextCursor"`
}

// GetItems returns the value of Items.
func (s *CampaignPage) GetItems() []Campaign {
	return s.Items
}

// GetNextCursor returns the value of NextCursor.
func (s *CampaignPage) GetNextCursor() OptNilString {
	return s.NextCursor
}

// SetItems sets the value of Items.
func (s *CampaignPage) SetItems(val []Campaign) {
	s.Items = val
}

// SetNextCursor sets the value of NextCursor.
func (s *CampaignPage) SetNextCursor(val OptNilString) {
	s.NextCursor = val
}

// Ref: #/components/schemas/CampaignStatus
type CampaignStatus string

const (
	CampaignStatusDraft    CampaignStatus = "draft"
	CampaignStatusLaunched CampaignStatus = "launched"
)

// AllValues returns all CampaignStatus values.
func (CampaignStatus) AllValues() []CampaignStatus {
	return []CampaignStatus{
		CampaignStatusDraft,
		CampaignStatusLaunched,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s CampaignStatus) MarshalText() ([]byte, error) {
	switch s {
	case CampaignStatusDraft:
		return []byte(s), nil
	case CampaignStatusLaunched:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CampaignStatus) UnmarshalText(data []byte) error {
	switch CampaignStatus(data) {
	case CampaignStatusDraft:
		*s = CampaignStatusDraft
		return nil
	case CampaignStatusLaunched:
		*s = CampaignStatusLaunched
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/ChannelContent
type ChannelContent struct {
	Voice VoiceContent `json:"voice"`
}

// GetVoice returns the value of Voice.
func (s *ChannelContent) GetVoice() VoiceContent {
	return s.Voice
}

// SetVoice sets the value of Voice.
func (s *ChannelContent) SetVoice(val VoiceContent) {
	s.Voice = val
}

// Ref: #/components/schemas/Channels
type Channels struct {
	Text  TextChannel  `json:"text"`
	Voice VoiceChannel `json:"voice"`
	Calls CallsChannel `json:"calls"`
}

// GetText returns the value of Text.
func (s *Channels) GetText() TextChannel {
	return s.Text
}

// GetVoice returns the value of Voice.
func (s *Channels) GetVoice() VoiceChannel {
	return s.Voice
}

// GetCalls returns the value of Calls.
func (s *Channels) GetCalls() CallsChannel {
	return s.Calls
}

// SetText sets the value of Text.
func (s *Channels) SetText(val TextChannel) {
	s.Text = val
}

// SetVoice sets the value of Voice.
func (s *Channels) SetVoice(val VoiceChannel) {
	s.Voice = val
}

// SetCalls sets the value of Calls.
func (s *Channels) SetCalls(val CallsChannel) {
	s.Calls = val
}

// Ref: #/components/schemas/CleanupResult
type CleanupResult struct {
	DeletedCampaigns int   `json:"deletedCampaigns"`
	DeletedContacts  int64 `json:"deletedContacts"`
	DeletedMessages  int64 `json:"deletedMessages"`
}

// GetDeletedCampaigns returns the value of DeletedCampaigns.
func (s *CleanupResult) GetDeletedCampaigns() int {
	return s.DeletedCampaigns
}

// GetDeletedContacts returns the value of DeletedContacts.
func (s *CleanupResult) GetDeletedContacts() int64 {
	return s.DeletedContacts
}

// GetDeletedMessages returns the value of DeletedMessages.
func (s *CleanupResult) GetDeletedMessages() int64 {
	return s.DeletedMessages
}

// SetDeletedCampaigns sets the value of DeletedCampaigns.
func (s *CleanupResult) SetDeletedCampaigns(val int) {
	s.DeletedCampaigns = val
}

// SetDeletedContacts sets the value of DeletedContacts.
func (s *CleanupResult) SetDeletedContacts(val int64) {
	s.DeletedContacts = val
}

// SetDeletedMessages sets the value of DeletedMessages.
func (s *CleanupResult) SetDeletedMessages(val int64) {
	s.DeletedMessages = val
}

// Ref: #/components/schemas/Contact
type Contact struct {
	ID         OptString `json:"id"`
	Name       OptString `json:"name"`
	Phone      OptString `json:"phone"`
	ProfilePic OptString `json:"profilePic"`
}

// GetID returns the value of ID.
func (s *Contact) GetID() OptString {
	return s.ID
}

// GetName returns the value of Name.
func (s *Contact) GetName() OptString {
	return s.Name
}

// GetPhone returns the value of Phone.
func (s *Contact) GetPhone() OptString {
	return s.Phone
}

// GetProfilePic returns the value of ProfilePic.
func (s *Contact) GetProfilePic() OptString {
	return s.ProfilePic
}

// SetID sets the value of ID.
func (s *Contact) SetID(val OptString) {
	s.ID = val
}

// SetName sets the value of Name.
func (s *Contact) SetName(val OptString) {
	s.Name = val
}

// SetPhone sets the value of Phone.
func (s *Contact) SetPhone(val OptString) {
	s.Phone = val
}

// SetProfilePic sets the value of ProfilePic.
func (s *Contact) SetProfilePic(val OptString) {
	s.ProfilePic = val
}

// Ref: #/components/schemas/ContactsFile
type ContactsFile struct {
	Name     OptString `json:"name"`
	URL      string    `json:"url"`
	PublicId OptString `json:"publicId"`
}

// GetName returns the value of Name.
func (s *ContactsFile) GetName() OptString {
	return s.Name
}

// GetURL returns the value of URL.
func (s *ContactsFile) GetURL() string {
	return s.URL
}

// GetPublicId returns the value of PublicId.
func (s *ContactsFile) GetPublicId() OptString {
	return s.PublicId
}

// SetName sets the value of Name.
func (s *ContactsFile) SetName(val OptString) {
	s.Name = val
}

// SetURL sets the value of URL.
func (s *ContactsFile) SetURL(val string) {
	s.URL = val
}

// SetPublicId sets the value of PublicId.
func (s *ContactsFile) SetPublicId(val OptString) {
	s.PublicId = val
}

// Ref: #/components/schemas/ContactsSummary
type ContactsSummary struct {
	Count int       `json:"count"`
	Items []Contact `json:"items"`
}

// GetCount returns the value of Count.
func (s *ContactsSummary) GetCount() int {
	return s.Count
}

// GetItems returns the value of Items.
func (s *ContactsSummary) GetItems() []Contact {
	return s.Items
}

// SetCount sets the value of Count.
func (s *ContactsSummary) SetCount(val int) {
	s.Count = val
}

// SetItems sets the value of Items.
func (s *ContactsSummary) SetItems(val []Contact) {
	s.Items = val
}

// DeleteCampaignNoContent is response for DeleteCampaign operation.
type DeleteCampaignNoContent struct{}

// DeleteThreadMessageNoContent is response for DeleteThreadMessage operation.
type DeleteThreadMessageNoContent struct{}

// Ref: #/components/schemas/Description
type Description struct {
	Original   OptString `json:"original"`
	AiEnhanced OptString `json:"aiEnhanced"`
}

// GetOriginal returns the value of Original.
func (s *Description) GetOriginal() OptString {
	return s.Original
}

// GetAiEnhanced returns the value of AiEnhanced.
func (s *Description) GetAiEnhanced() OptString {
	return s.AiEnhanced
}

// SetOriginal sets the value of Original.
func (s *Description) SetOriginal(val OptString) {
	s.Original = val
}

// SetAiEnhanced sets the value of AiEnhanced.
func (s *Description) SetAiEnhanced(val OptString) {
	s.AiEnhanced = val
}

// Ref: #/components/schemas/DescriptionRequest
type DescriptionRequest struct {
	WordLimit OptInt    `json:"wordLimit"`
	Tone      OptString `json:"tone"`
	Emotion   OptString `json:"emotion"`
}

// GetWordLimit returns the value of WordLimit.
func (s *DescriptionRequest) GetWordLimit() OptInt {
	return s.WordLimit
}

// GetTone returns the value of Tone.
func (s *DescriptionRequest) GetTone() OptString {
	return s.Tone
}

// GetEmotion returns the value of Emotion.
func (s *DescriptionRequest) GetEmotion() OptString {
	return s.Emotion
}

// SetWordLimit sets the value of WordLimit.
func (s *DescriptionRequest) SetWordLimit(val OptInt) {
	s.WordLimit = val
}

// SetTone sets the value of Tone.
func (s *DescriptionRequest) SetTone(val OptString) {
	s.Tone = val
}

// SetEmotion sets the value of Emotion.
func (s *DescriptionRequest) SetEmotion(val OptString) {
	s.Emotion = val
}

// Ref: #/components/schemas/DescriptionResult
type DescriptionResult struct {
	AiDescription string `json:"aiDescription"`
}

// GetAiDescription returns the value of AiDescription.
func (s *DescriptionResult) GetAiDescription() string {
	return s.AiDescription
}

// SetAiDescription sets the value of AiDescription.
func (s *DescriptionResult) SetAiDescription(val string) {
	s.AiDescription = val
}

// Ref: #/components/schemas/Error
type Error struct {
	// NOT_FOUND, UNAUTHORIZED, FORBIDDEN, BAD_REQUEST, CONFLICT, INTERNAL, TIMEOUT, UNAVAILABLE,
	// RATE_LIMITED or UPSTREAM.
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetCode returns the value of Code.
func (s *Error) GetCode() string {
	return s.Code
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// SetCode sets the value of Code.
func (s *Error) SetCode(val string) {
	s.Code = val
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// Ref: #/components/schemas/ExtractedContacts
type ExtractedContacts struct {
	Count    int       `json:"count"`
	Contacts []Contact `json:"contacts"`
}

// GetCount returns the value of Count.
func (s *ExtractedContacts) GetCount() int {
	return s.Count
}

// GetContacts returns the value of Contacts.
func (s *ExtractedContacts) GetContacts() []Contact {
	return s.Contacts
}

// SetCount sets the value of Count.
func (s *ExtractedContacts) SetCount(val int) {
	s.Count = val
}

// SetContacts sets the value of Contacts.
func (s *ExtractedContacts) SetContacts(val []Contact) {
	s.Contacts = val
}

// Ref: #/components/schemas/InboxCampaign
type InboxCampaign struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	ContactCount int           `json:"contactCount"`
	LaunchedAt   NilDateTime   `json:"launchedAt"`
	AudioUrls    CampaignAudio `json:"audioUrls"`
	Assets       []Asset       `json:"assets"`
	Contacts     []Contact     `json:"contacts"`
}

// GetID returns the value of ID.
func (s *InboxCampaign) GetID() uuid.UUID {
	return s.ID
}

// GetTitle returns the value of Title.
func (s *InboxCampaign) GetTitle() string {
	return s.Title
}

// GetDescription returns the value of Description.
func (s *InboxCampaign) GetDescription() string {
	return s.Description
}

// GetContactCount returns the value of ContactCount.
func (s *InboxCampaign) GetContactCount() int {
	return s.ContactCount
}

// GetLaunchedAt returns the value of LaunchedAt.
func (s *InboxCampaign) GetLaunchedAt() NilDateTime {
	return s.LaunchedAt
}

// GetAudioUrls returns the value of AudioUrls.
func (s *InboxCampaign) GetAudioUrls() CampaignAudio {
	return s.AudioUrls
}

// GetAssets returns the value of Assets.
func (s *InboxCampaign) GetAssets() []Asset {
	return s.Assets
}

// GetContacts returns the value of Contacts.
func (s *InboxCampaign) GetContacts() []Contact {
	return s.Contacts
}

// SetID sets the value of ID.
func (s *InboxCampaign) SetID(val uuid.UUID) {
	s.ID = val
}

// SetTitle sets the value of Title.
func (s *InboxCampaign) SetTitle(val string) {
	s.Title = val
}

// SetDescription sets the value of Description.
func (s *InboxCampaign) SetDescription(val string) {
	s.Description = val
}

// SetContactCount sets the value of ContactCount.
func (s *InboxCampaign) SetContactCount(val int) {
	s.ContactCount = val
}

// SetLaunchedAt sets the value of LaunchedAt.
func (s *InboxCampaign) SetLaunchedAt(val NilDateTime) {
	s.LaunchedAt = val
}

// SetAudioUrls sets the value of AudioUrls.
func (s *InboxCampaign) SetAudioUrls(val CampaignAudio) {
	s.AudioUrls = val
}

// SetAssets sets the value of Assets.
func (s *InboxCampaign) SetAssets(val []Asset) {
	s.Assets = val
}

// SetContacts sets the value of Contacts.
func (s *InboxCampaign) SetContacts(val []Contact) {
	s.Contacts = val
}

// Ref: #/components/schemas/InboxOverview
type InboxOverview struct {
	Campaigns []InboxCampaign `json:"campaigns"`
}

// GetCampaigns returns the value of Campaigns.
func (s *InboxOverview) GetCampaigns() []InboxCampaign {
	return s.Campaigns
}

// SetCampaigns sets the value of Campaigns.
func (s *InboxOverview) SetCampaigns(val []InboxCampaign) {
	s.Campaigns = val
}

// Ref: #/components/schemas/InboxStatus
type InboxStatus struct {
	CampaignContactsInData int      `json:"campaignContactsInData"`
	InboxExists            bool     `json:"inboxExists"`
	ContactsInInbox        int      `json:"contactsInInbox"`
	TotalMessagesInInbox   int64    `json:"totalMessagesInInbox"`
	InboxContacts          []Thread `json:"inboxContacts"`
}

// GetCampaignContactsInData returns the value of CampaignContactsInData.
func (s *InboxStatus) GetCampaignContactsInData() int {
	return s.CampaignContactsInData
}

// GetInboxExists returns the value of InboxExists.
func (s *InboxStatus) GetInboxExists() bool {
	return s.InboxExists
}

// GetContactsInInbox returns the value of ContactsInInbox.
func (s *InboxStatus) GetContactsInInbox() int {
	return s.ContactsInInbox
}

// GetTotalMessagesInInbox returns the value of TotalMessagesInInbox.
func (s *InboxStatus) GetTotalMessagesInInbox() int64 {
	return s.TotalMessagesInInbox
}

// GetInboxContacts returns the value of InboxContacts.
func (s *InboxStatus) GetInboxContacts() []Thread {
	return s.InboxContacts
}

// SetCampaignContactsInData sets the value of CampaignContactsInData.
func (s *InboxStatus) SetCampaignContactsInData(val int) {
	s.CampaignContactsInData = val
}

// SetInboxExists sets the value of InboxExists.
func (s *InboxStatus) SetInboxExists(val bool) {
	s.InboxExists = val
}

// SetContactsInInbox sets the value of ContactsInInbox.
func (s *InboxStatus) SetContactsInInbox(val int) {
	s.ContactsInInbox = val
}

// SetTotalMessagesInInbox sets the value of TotalMessagesInInbox.
func (s *InboxStatus) SetTotalMessagesInInbox(val int64) {
	s.TotalMessagesInInbox = val
}

// SetInboxContacts sets the value of InboxContacts.
func (s *InboxStatus) SetInboxContacts(val []Thread) {
	s.InboxContacts = val
}

// Ref: #/components/schemas/InboxThreads
type InboxThreads struct {
	Contacts []Thread `json:"contacts"`
}

// GetContacts returns the value of Contacts.
func (s *InboxThreads) GetContacts() []Thread {
	return s.Contacts
}

// SetContacts sets the value of Contacts.
func (s *InboxThreads) SetContacts(val []Thread) {
	s.Contacts = val
}

// Ref: #/components/schemas/Message
type Message struct {
	ID        string        `json:"id"`
	Sender    MessageSender `json:"sender"`
	Type      MessageType   `json:"type"`
	Content   string        `json:"content"`
	AudioUrl  OptString     `json:"audioUrl"`
	Assets    []Asset       `json:"assets"`
	Timestamp time.Time     `json:"timestamp"`
	CreatedAt time.Time     `json:"createdAt"`
}

// GetID returns the value of ID.
func (s *Message) GetID() string {
	return s.ID
}

// GetSender returns the value of Sender.
func (s *Message) GetSender() MessageSender {
	return s.Sender
}

// GetType returns the value of Type.
func (s *Message) GetType() MessageType {
	return s.Type
}

// GetContent returns the value of Content.
func (s *Message) GetContent() string {
	return s.Content
}

// GetAudioUrl returns the value of AudioUrl.
func (s *Message) GetAudioUrl() OptString {
	return s.AudioUrl
}

// GetAssets returns the value of Assets.
func (s *Message) GetAssets() []Asset {
	return s.Assets
}

// GetTimestamp returns the value of Timestamp.
func (s *Message) GetTimestamp() time.Time {
	return s.Timestamp
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Message) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// SetID sets the value of ID.
func (s *Message) SetID(val string) {
	s.ID = val
}

// SetSender sets the value of Sender.
func (s *Message) SetSender(val MessageSender) {
	s.Sender = val
}

// SetType sets the value of Type.
func (s *Message) SetType(val MessageType) {
	s.Type = val
}

// SetContent sets the value of Content.
func (s *Message) SetContent(val string) {
	s.Content = val
}

// SetAudioUrl sets the value of AudioUrl.
func (s *Message) SetAudioUrl(val OptString) {
	s.AudioUrl = val
}

// SetAssets sets the value of Assets.
func (s *Message) SetAssets(val []Asset) {
	s.Assets = val
}

// SetTimestamp sets the value of Timestamp.
func (s *Message) SetTimestamp(val time.Time) {
	s.Timestamp = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Message) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// Ref: #/components/schemas/MessageInput
type MessageInput struct {
	ID        OptString        `json:"id"`
	Sender    OptMessageSender `json:"sender"`
	Type      OptMessageType   `json:"type"`
	Content   OptString        `json:"content"`
	AudioUrl  OptString        `json:"audioUrl"`
	Assets    []Asset          `json:"assets"`
	Timestamp OptDateTime      `json:"timestamp"`
}

// GetID returns the value of ID.
func (s *MessageInput) GetID() OptString {
	return s.ID
}

// GetSender returns the value of Sender.
func (s *MessageInput) GetSender() OptMessageSender {
	return s.Sender
}

// GetType returns the value of Type.
func (s *MessageInput) GetType() OptMessageType {
	return s.Type
}

// GetContent returns the value of Content.
func (s *MessageInput) GetContent() OptString {
	return s.Content
}

// GetAudioUrl returns the value of AudioUrl.
func (s *MessageInput) GetAudioUrl() OptString {
	return s.AudioUrl
}

// GetAssets returns the value of Assets.
func (s *MessageInput) GetAssets() []Asset {
	return s.Assets
}

// GetTimestamp returns the value of Timestamp.
func (s *MessageInput) GetTimestamp() OptDateTime {
	return s.Timestamp
}

// SetID sets the value of ID.
func (s *MessageInput) SetID(val OptString) {
	s.ID = val
}

// SetSender sets the value of Sender.
func (s *MessageInput) SetSender(val OptMessageSender) {
	s.Sender = val
}

// SetType sets the value of Type.
func (s *MessageInput) SetType(val OptMessageType) {
	s.Type = val
}

// SetContent sets the value of Content.
func (s *MessageInput) SetContent(val OptString) {
	s.Content = val
}

// SetAudioUrl sets the value of AudioUrl.
func (s *MessageInput) SetAudioUrl(val OptString) {
	s.AudioUrl = val
}

// SetAssets sets the value of Assets.
func (s *MessageInput) SetAssets(val []Asset) {
	s.Assets = val
}

// SetTimestamp sets the value of Timestamp.
func (s *MessageInput) SetTimestamp(val OptDateTime) {
	s.Timestamp = val
}

// Ref: #/components/schemas/MessageSender
type MessageSender string

const (
	MessageSenderCampaign MessageSender = "campaign"
	MessageSenderUser     MessageSender = "user"
	MessageSenderAi       MessageSender = "ai"
)

// AllValues returns all MessageSender values.
func (MessageSender) AllValues() []MessageSender {
	return []MessageSender{
		MessageSenderCampaign,
		MessageSenderUser,
		MessageSenderAi,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s MessageSender) MarshalText() ([]byte, error) {
	switch s {
	case MessageSenderCampaign:
		return []byte(s), nil
	case MessageSenderUser:
		return []byte(s), nil
	case MessageSenderAi:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *MessageSender) UnmarshalText(data []byte) error {
	switch MessageSender(data) {
	case MessageSenderCampaign:
		*s = MessageSenderCampaign
		return nil
	case MessageSenderUser:
		*s = MessageSenderUser
		return nil
	case MessageSenderAi:
		*s = MessageSenderAi
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/MessageType
type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeAudio MessageType = "audio"
)

// AllValues returns all MessageType values.
func (MessageType) AllValues() []MessageType {
	return []MessageType{
		MessageTypeText,
		MessageTypeAudio,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s MessageType) MarshalText() ([]byte, error) {
	switch s {
	case MessageTypeText:
		return []byte(s), nil
	case MessageTypeAudio:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *MessageType) UnmarshalText(data []byte) error {
	switch MessageType(data) {
	case MessageTypeText:
		*s = MessageTypeText
		return nil
	case MessageTypeAudio:
		*s = MessageTypeAudio
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/MigrateResult
type MigrateResult struct {
	MigratedCampaigns int `json:"migratedCampaigns"`
	TotalContacts     int `json:"totalContacts"`
}

// GetMigratedCampaigns returns the value of MigratedCampaigns.
func (s *MigrateResult) GetMigratedCampaigns() int {
	return s.MigratedCampaigns
}

// GetTotalContacts returns the value of TotalContacts.
func (s *MigrateResult) GetTotalContacts() int {
	return s.TotalContacts
}

// SetMigratedCampaigns sets the value of MigratedCampaigns.
func (s *MigrateResult) SetMigratedCampaigns(val int) {
	s.MigratedCampaigns = val
}

// SetTotalContacts sets the value of TotalContacts.
func (s *MigrateResult) SetTotalContacts(val int) {
	s.TotalContacts = val
}

// NewNilDateTime returns new NilDateTime with value set to v.
func NewNilDateTime(v time.Time) NilDateTime {
	return NilDateTime{
		Value: v,
	}
}

// NilDateTime is nullable time.Time.
type NilDateTime struct {
	Value time.Time
	Null  bool
}

// SetTo sets value to v.
func (o *NilDateTime) SetTo(v time.Time) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilDateTime) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilDateTime) SetToNull() {
	o.Null = true
	var v time.Time
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilDateTime) Get() (v time.Time, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Onboarding
type Onboarding struct {
	BusinessType       OptString `json:"businessType"`
	TargetAudience     OptString `json:"targetAudience"`
	BrandStyle         []string  `json:"brandStyle"`
	ResponsePreference OptString `json:"responsePreference"`
	Language           OptString `json:"language"`
	Region             OptString `json:"region"`
	ComplianceNotes    OptString `json:"complianceNotes"`
	TermsAccepted      OptBool   `json:"termsAccepted"`
}

// GetBusinessType returns the value of BusinessType.
func (s *Onboarding) GetBusinessType() OptString {
	return s.BusinessType
}

// GetTargetAudience returns the value of TargetAudience.
func (s *Onboarding) GetTargetAudience() OptString {
	return s.TargetAudience
}

// GetBrandStyle returns the value of BrandStyle.
func (s *Onboarding) GetBrandStyle() []string {
	return s.BrandStyle
}

// GetResponsePreference returns the value of ResponsePreference.
func (s *Onboarding) GetResponsePreference() OptString {
	return s.ResponsePreference
}

// GetLanguage returns the value of Language.
func (s *Onboarding) GetLanguage() OptString {
	return s.Language
}

// GetRegion returns the value of Region.
func (s *Onboarding) GetRegion() OptString {
	return s.Region
}

// GetComplianceNotes returns the value of ComplianceNotes.
func (s *Onboarding) GetComplianceNotes() OptString {
	return s.ComplianceNotes
}

// GetTermsAccepted returns the value of TermsAccepted.
func (s *Onboarding) GetTermsAccepted() OptBool {
	return s.TermsAccepted
}

// SetBusinessType sets the value of BusinessType.
func (s *Onboarding) SetBusinessType(val OptString) {
	s.BusinessType = val
}

// SetTargetAudience sets the value of TargetAudience.
func (s *Onboarding) SetTargetAudience(val OptString) {
	s.TargetAudience = val
}

// SetBrandStyle sets the value of BrandStyle.
func (s *Onboarding) SetBrandStyle(val []string) {
	s.BrandStyle = val
}

// SetResponsePreference sets the value of ResponsePreference.
func (s *Onboarding) SetResponsePreference(val OptString) {
	s.ResponsePreference = val
}

// SetLanguage sets the value of Language.
func (s *Onboarding) SetLanguage(val OptString) {
	s.Language = val
}

// SetRegion sets the value of Region.
func (s *Onboarding) SetRegion(val OptString) {
	s.Region = val
}

// SetComplianceNotes sets the value of ComplianceNotes.
func (s *Onboarding) SetComplianceNotes(val OptString) {
	s.ComplianceNotes = val
}

// SetTermsAccepted sets the value of TermsAccepted.
func (s *Onboarding) SetTermsAccepted(val OptBool) {
	s.TermsAccepted = val
}

// NewOptAssetType returns new OptAssetType with value set to v.
func NewOptAssetType(v AssetType) OptAssetType {
	return OptAssetType{
		Value: v,
		Set:   true,
	}
}

// OptAssetType is optional AssetType.
type OptAssetType struct {
	Value AssetType
	Set   bool
}

// IsSet returns true if OptAssetType was set.
func (o OptAssetType) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptAssetType) Reset() {
	var v AssetType
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptAssetType) SetTo(v AssetType) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptAssetType) Get() (v AssetType, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptAssetType) Or(d AssetType) AssetType {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptBool returns new OptBool with value set to v.
func NewOptBool(v bool) OptBool {
	return OptBool{
		Value: v,
		Set:   true,
	}
}

// OptBool is optional bool.
type OptBool struct {
	Value bool
	Set   bool
}

// IsSet returns true if OptBool was set.
func (o OptBool) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptBool) Reset() {
	var v bool
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptBool) SetTo(v bool) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptBool) Get() (v bool, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptBool) Or(d bool) bool {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptCampaignAudio returns new OptCampaignAudio with value set to v.
func NewOptCampaignAudio(v CampaignAudio) OptCampaignAudio {
	return OptCampaignAudio{
		Value: v,
		Set:   true,
	}
}

// OptCampaignAudio is optional CampaignAudio.
type OptCampaignAudio struct {
	Value CampaignAudio
	Set   bool
}

// IsSet returns true if OptCampaignAudio was set.
func (o OptCampaignAudio) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptCampaignAudio) Reset() {
	var v CampaignAudio
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptCampaignAudio) SetTo(v CampaignAudio) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptCampaignAudio) Get() (v CampaignAudio, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptCampaignAudio) Or(d CampaignAudio) CampaignAudio {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptCampaignStatus returns new OptCampaignStatus with value set to v.
func NewOptCampaignStatus(v CampaignStatus) OptCampaignStatus {
	return OptCampaignStatus{
		Value: v,
		Set:   true,
	}
}

// OptCampaignStatus is optional CampaignStatus.
type OptCampaignStatus struct {
	Value CampaignStatus
	Set   bool
}

// IsSet returns true if OptCampaignStatus was set.
func (o OptCampaignStatus) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptCampaignStatus) Reset() {
	var v CampaignStatus
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptCampaignStatus) SetTo(v CampaignStatus) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptCampaignStatus) Get() (v CampaignStatus, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptCampaignStatus) Or(d CampaignStatus) CampaignStatus {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptChannels returns new OptChannels with value set to v.
func NewOptChannels(v Channels) OptChannels {
	return OptChannels{
		Value: v,
		Set:   true,
	}
}

// OptChannels is optional Channels.
type OptChannels struct {
	Value Channels
	Set   bool
}

// IsSet returns true if OptChannels was set.
func (o OptChannels) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptChannels) Reset() {
	var v Channels
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptChannels) SetTo(v Channels) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptChannels) Get() (v Channels, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptChannels) Or(d Channels) Channels {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptContactsFile returns new OptContactsFile with value set to v.
func NewOptContactsFile(v ContactsFile) OptContactsFile {
	return OptContactsFile{
		Value: v,
		Set:   true,
	}
}

// OptContactsFile is optional ContactsFile.
type OptContactsFile struct {
	Value ContactsFile
	Set   bool
}

// IsSet returns true if OptContactsFile was set.
func (o OptContactsFile) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptContactsFile) Reset() {
	var v ContactsFile
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptContactsFile) SetTo(v ContactsFile) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptContactsFile) Get() (v ContactsFile, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptContactsFile) Or(d ContactsFile) ContactsFile {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptContactsSummary returns new OptContactsSummary with value set to v.
func NewOptContactsSummary(v ContactsSummary) OptContactsSummary {
	return OptContactsSummary{
		Value: v,
		Set:   true,
	}
}

// OptContactsSummary is optional ContactsSummary.
type OptContactsSummary struct {
	Value ContactsSummary
	Set   bool
}

// IsSet returns true if OptContactsSummary was set.
func (o OptContactsSummary) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptContactsSummary) Reset() {
	var v ContactsSummary
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptContactsSummary) SetTo(v ContactsSummary) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptContactsSummary) Get() (v ContactsSummary, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptContactsSummary) Or(d ContactsSummary) ContactsSummary {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptDateTime returns new OptDateTime with value set to v.
func NewOptDateTime(v time.Time) OptDateTime {
	return OptDateTime{
		Value: v,
		Set:   true,
	}
}

// OptDateTime is optional time.Time.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDateTime was set.
func (o OptDateTime) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDateTime) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDateTime) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptMessageSender returns new OptMessageSender with value set to v.
func NewOptMessageSender(v MessageSender) OptMessageSender {
	return OptMessageSender{
		Value: v,
		Set:   true,
	}
}

// OptMessageSender is optional MessageSender.
type OptMessageSender struct {
	Value MessageSender
	Set   bool
}

// IsSet returns true if OptMessageSender was set.
func (o OptMessageSender) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptMessageSender) Reset() {
	var v MessageSender
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptMessageSender) SetTo(v MessageSender) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptMessageSender) Get() (v MessageSender, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptMessageSender) Or(d MessageSender) MessageSender {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptMessageType returns new OptMessageType with value set to v.
func NewOptMessageType(v MessageType) OptMessageType {
	return OptMessageType{
		Value: v,
		Set:   true,
	}
}

// OptMessageType is optional MessageType.
type OptMessageType struct {
	Value MessageType
	Set   bool
}

// IsSet returns true if OptMessageType was set.
func (o OptMessageType) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptMessageType) Reset() {
	var v MessageType
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptMessageType) SetTo(v MessageType) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptMessageType) Get() (v MessageType, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptMessageType) Or(d MessageType) MessageType {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptNilString returns new OptNilString with value set to v.
func NewOptNilString(v string) OptNilString {
	return OptNilString{
		Value: v,
		Set:   true,
	}
}

// OptNilString is optional nullable string.
type OptNilString struct {
	Value string
	Set   bool
	Null  bool
}

// IsSet returns true if OptNilString was set.
func (o OptNilString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptNilString) Reset() {
	var v string
	o.Value = v
	o.Set = false
	o.Null = false
}

// SetTo sets value to v.
func (o *OptNilString) SetTo(v string) {
	o.Set = true
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o OptNilString) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *OptNilString) SetToNull() {
	o.Set = true
	o.Null = true
	var v string
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptNilString) Get() (v string, ok bool) {
	if o.Null {
		return v, false
	}
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptNilString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptOnboarding returns new OptOnboarding with value set to v.
func NewOptOnboarding(v Onboarding) OptOnboarding {
	return OptOnboarding{
		Value: v,
		Set:   true,
	}
}

// OptOnboarding is optional Onboarding.
type OptOnboarding struct {
	Value Onboarding
	Set   bool
}

// IsSet returns true if OptOnboarding was set.
func (o OptOnboarding) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptOnboarding) Reset() {
	var v Onboarding
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptOnboarding) SetTo(v Onboarding) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptOnboarding) Get() (v Onboarding, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptOnboarding) Or(d Onboarding) Onboarding {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/SendMessageRequest
type SendMessageRequest struct {
	Message string `json:"message"`
}

// GetMessage returns the value of Message.
func (s *SendMessageRequest) GetMessage() string {
	return s.Message
}

// SetMessage sets the value of Message.
func (s *SendMessageRequest) SetMessage(val string) {
	s.Message = val
}

// Ref: #/components/schemas/TextChannel
type TextChannel struct {
	Enabled   bool   `json:"enabled"`
	WordLimit OptInt `json:"wordLimit"`
}

// GetEnabled returns the value of Enabled.
func (s *TextChannel) GetEnabled() bool {
	return s.Enabled
}

// GetWordLimit returns the value of WordLimit.
func (s *TextChannel) GetWordLimit() OptInt {
	return s.WordLimit
}

// SetEnabled sets the value of Enabled.
func (s *TextChannel) SetEnabled(val bool) {
	s.Enabled = val
}

// SetWordLimit sets the value of WordLimit.
func (s *TextChannel) SetWordLimit(val OptInt) {
	s.WordLimit = val
}

// Ref: #/components/schemas/Thread
type Thread struct {
	ContactId       string    `json:"contactId"`
	ContactName     string    `json:"contactName"`
	ContactPhone    string    `json:"contactPhone"`
	ProfilePic      OptString `json:"profilePic"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	UnreadCount     int       `json:"unreadCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// GetContactId returns the value of ContactId.
func (s *Thread) GetContactId() string {
	return s.ContactId
}

// GetContactName returns the value of ContactName.
func (s *Thread) GetContactName() string {
	return s.ContactName
}

// GetContactPhone returns the value of ContactPhone.
func (s *Thread) GetContactPhone() string {
	return s.ContactPhone
}

// GetProfilePic returns the value of ProfilePic.
func (s *Thread) GetProfilePic() OptString {
	return s.ProfilePic
}

// GetLastMessage returns the value of LastMessage.
func (s *Thread) GetLastMessage() string {
	return s.LastMessage
}

// GetLastMessageTime returns the value of LastMessageTime.
func (s *Thread) GetLastMessageTime() time.Time {
	return s.LastMessageTime
}

// GetUnreadCount returns the value of UnreadCount.
func (s *Thread) GetUnreadCount() int {
	return s.UnreadCount
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Thread) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// SetContactId sets the value of ContactId.
func (s *Thread) SetContactId(val string) {
	s.ContactId = val
}

// SetContactName sets the value of ContactName.
func (s *Thread) SetContactName(val string) {
	s.ContactName = val
}

// SetContactPhone sets the value of ContactPhone.
func (s *Thread) SetContactPhone(val string) {
	s.ContactPhone = val
}

// SetProfilePic sets the value of ProfilePic.
func (s *Thread) SetProfilePic(val OptString) {
	s.ProfilePic = val
}

// SetLastMessage sets the value of LastMessage.
func (s *Thread) SetLastMessage(val string) {
	s.LastMessage = val
}

// SetLastMessageTime sets the value of LastMessageTime.
func (s *Thread) SetLastMessageTime(val time.Time) {
	s.LastMessageTime = val
}

// SetUnreadCount sets the value of UnreadCount.
func (s *Thread) SetUnreadCount(val int) {
	s.UnreadCount = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Thread) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// Ref: #/components/schemas/ThreadMessages
type ThreadMessages struct {
	Messages []Message `json:"messages"`
}

// GetMessages returns the value of Messages.
func (s *ThreadMessages) GetMessages() []Message {
	return s.Messages
}

// SetMessages sets the value of Messages.
func (s *ThreadMessages) SetMessages(val []Message) {
	s.Messages = val
}

// Ref: #/components/schemas/VoiceChannel
type VoiceChannel struct {
	Enabled            bool   `json:"enabled"`
	MaxDurationSeconds OptInt `json:"maxDurationSeconds"`
}

// GetEnabled returns the value of Enabled.
func (s *VoiceChannel) GetEnabled() bool {
	return s.Enabled
}

// GetMaxDurationSeconds returns the value of MaxDurationSeconds.
func (s *VoiceChannel) GetMaxDurationSeconds() OptInt {
	return s.MaxDurationSeconds
}

// SetEnabled sets the value of Enabled.
func (s *VoiceChannel) SetEnabled(val bool) {
	s.Enabled = val
}

// SetMaxDurationSeconds sets the value of MaxDurationSeconds.
func (s *VoiceChannel) SetMaxDurationSeconds(val OptInt) {
	s.MaxDurationSeconds = val
}

// Ref: #/components/schemas/VoiceContent
type VoiceContent struct {
	Transcript OptString `json:"transcript"`
}

// GetTranscript returns the value of Transcript.
func (s *VoiceContent) GetTranscript() OptString {
	return s.Transcript
}

// SetTranscript sets the value of Transcript.
func (s *VoiceContent) SetTranscript(val OptString) {
	s.Transcript = val
}
