package v1handler

import (
	"outreach/internal/api/specs/v1specs"
	"outreach/internal/campaign"
	"outreach/internal/inbox"
	"outreach/pkg/domain"

	"github.com/google/uuid"
)

func optString(s string) v1specs.OptString {
	if s == "" {
		return v1specs.OptString{}
	}

	return v1specs.NewOptString(s)
}

func optInt(n int) v1specs.OptInt {
	if n == 0 {
		return v1specs.OptInt{}
	}

	return v1specs.NewOptInt(n)
}

func stringPtr(o v1specs.OptString) *string {
	if v, ok := o.Get(); ok {
		return &v
	}

	return nil
}

func DomainAssetsToV1Specs(in []domain.Asset) []v1specs.Asset {
	out := make([]v1specs.Asset, 0, len(in))
	for _, a := range in {
		asset := v1specs.Asset{
			URL:      a.URL,
			PublicId: optString(a.PublicID),
		}
		if a.Type != "" {
			asset.Type = v1specs.NewOptAssetType(v1specs.AssetType(a.Type))
		}
		out = append(out, asset)
	}

	return out
}

func V1SpecsAssetsToDomain(in []v1specs.Asset) []domain.Asset {
	out := make([]domain.Asset, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Asset{
			URL:      a.URL,
			PublicID: a.PublicId.Value,
			Type:     domain.AssetType(a.Type.Value),
		})
	}

	return out
}

func DomainContactsToV1Specs(in []domain.Contact) []v1specs.Contact {
	out := make([]v1specs.Contact, 0, len(in))
	for _, c := range in {
		out = append(out, v1specs.Contact{
			ID:         optString(c.ID),
			Name:       optString(c.Name),
			Phone:      optString(c.Phone),
			ProfilePic: optString(c.ProfilePic),
		})
	}

	return out
}

func V1SpecsContactsToDomain(in []v1specs.Contact) []domain.Contact {
	out := make([]domain.Contact, 0, len(in))
	for _, c := range in {
		out = append(out, domain.Contact{
			ID:         c.ID.Value,
			Name:       c.Name.Value,
			Phone:      c.Phone.Value,
			ProfilePic: c.ProfilePic.Value,
		})
	}

	return out
}

func domainAudioToV1Specs(in domain.AudioURLs) v1specs.CampaignAudio {
	return v1specs.CampaignAudio{
		Voice: optString(in.Voice),
		Calls: optString(in.Calls),
	}
}

func domainChannelsToV1Specs(in domain.Channels) v1specs.Channels {
	return v1specs.Channels{
		Text: v1specs.TextChannel{
			Enabled:   in.Text.Enabled,
			WordLimit: optInt(in.Text.WordLimit),
		},
		Voice: v1specs.VoiceChannel{
			Enabled:            in.Voice.Enabled,
			MaxDurationSeconds: optInt(in.Voice.MaxDurationSeconds),
		},
		Calls: v1specs.CallsChannel{
			Enabled:                in.Calls.Enabled,
			MaxCallDurationSeconds: optInt(in.Calls.MaxCallDurationSeconds),
		},
	}
}

func v1SpecsChannelsToDomain(in v1specs.Channels) domain.Channels {
	return domain.Channels{
		Text: domain.TextChannel{
			Enabled:   in.Text.Enabled,
			WordLimit: in.Text.WordLimit.Value,
		},
		Voice: domain.VoiceChannel{
			Enabled:            in.Voice.Enabled,
			MaxDurationSeconds: in.Voice.MaxDurationSeconds.Value,
		},
		Calls: domain.CallsChannel{
			Enabled:                in.Calls.Enabled,
			MaxCallDurationSeconds: in.Calls.MaxCallDurationSeconds.Value,
		},
	}
}

func domainOnboardingToV1Specs(in domain.Onboarding) v1specs.Onboarding {
	out := v1specs.Onboarding{
		BusinessType:       optString(in.BusinessType),
		TargetAudience:     optString(in.TargetAudience),
		BrandStyle:         in.BrandStyle,
		ResponsePreference: optString(in.ResponsePreference),
		Language:           optString(in.Language),
		Region:             optString(in.Region),
		ComplianceNotes:    optString(in.ComplianceNotes),
	}
	if in.TermsAccepted {
		out.TermsAccepted = v1specs.NewOptBool(true)
	}

	return out
}

func v1SpecsOnboardingToDomain(in v1specs.Onboarding) domain.Onboarding {
	return domain.Onboarding{
		BusinessType:       in.BusinessType.Value,
		TargetAudience:     in.TargetAudience.Value,
		BrandStyle:         in.BrandStyle,
		ResponsePreference: in.ResponsePreference.Value,
		Language:           in.Language.Value,
		Region:             in.Region.Value,
		ComplianceNotes:    in.ComplianceNotes.Value,
		TermsAccepted:      in.TermsAccepted.Value,
	}
}

func DomainCampaignToV1Specs(in *domain.Campaign) *v1specs.Campaign {
	status := in.Status
	if status == "" {
		status = domain.CampaignStatusDraft
	}

	out := &v1specs.Campaign{
		ID:    uuid.UUID(in.ID),
		Title: in.Title,
		Description: v1specs.Description{
			Original:   optString(in.Description.Original),
			AiEnhanced: optString(in.Description.AIEnhanced),
		},
		PreviewText:   optString(in.PreviewText),
		AiDescription: optString(in.AIDescription),
		ToneOfVoice:   optString(in.ToneOfVoice),
		Channels:      domainChannelsToV1Specs(in.Channels),
		ChannelContent: v1specs.ChannelContent{
			Voice: v1specs.VoiceContent{Transcript: optString(in.ChannelContent.Voice.Transcript)},
		},
		Assets:       DomainAssetsToV1Specs(in.Assets),
		AudioUrls:    domainAudioToV1Specs(in.AudioURLs),
		Onboarding:   domainOnboardingToV1Specs(in.Onboarding),
		ContactCount: optInt(in.ContactCount),
		Status:       v1specs.CampaignStatus(status),
		CreatedAt:    in.CreatedAt,
		UpdatedAt:    in.UpdatedAt,
	}
	if len(in.Contacts) > 0 {
		out.Contacts = DomainContactsToV1Specs(in.Contacts)
	}
	if f := in.ContactsFile; f != nil {
		out.ContactsFile = v1specs.NewOptContactsFile(v1specs.ContactsFile{
			Name:     optString(f.Name),
			URL:      f.URL,
			PublicId: optString(f.PublicID),
		})
	}
	if s := in.ContactsSummary; s != nil {
		out.ContactsSummary = v1specs.NewOptContactsSummary(v1specs.ContactsSummary{
			Count: s.Count,
			Items: DomainContactsToV1Specs(s.Items),
		})
	}
	if in.LaunchedAt != nil {
		out.LaunchedAt = v1specs.NewOptDateTime(*in.LaunchedAt)
	}

	return out
}

// V1SpecsCampaignInputToUpdate keeps absent fields nil so that they are
// left untouched. A present but empty list clears it.
func V1SpecsCampaignInputToUpdate(in *v1specs.CampaignInput) campaign.Update {
	u := campaign.Update{
		Title:              stringPtr(in.Title),
		Description:        stringPtr(in.Description),
		PreviewText:        stringPtr(in.PreviewText),
		ToneOfVoice:        stringPtr(in.ToneOfVoice),
		VoiceTranscript:    stringPtr(in.VoiceTranscript),
		ContactsFileAction: in.ContactsFileAction.Value,
	}
	if v, ok := in.Channels.Get(); ok {
		ch := v1SpecsChannelsToDomain(v)
		u.Channels = &ch
	}
	if in.Assets != nil {
		assets := V1SpecsAssetsToDomain(in.Assets)
		u.Assets = &assets
	}
	if v, ok := in.AudioUrls.Get(); ok {
		u.AudioURLs = &domain.AudioURLs{Voice: v.Voice.Value, Calls: v.Calls.Value}
	}
	if v, ok := in.Onboarding.Get(); ok {
		o := v1SpecsOnboardingToDomain(v)
		u.Onboarding = &o
	}
	if v, ok := in.ContactsFile.Get(); ok {
		u.ContactsFile = &domain.ContactsFile{Name: v.Name.Value, URL: v.URL, PublicID: v.PublicId.Value}
	}
	if in.Contacts != nil {
		contacts := V1SpecsContactsToDomain(in.Contacts)
		u.Contacts = &contacts
	}

	return u
}

// V1SpecsCampaignInputToDraft builds the campaign a create request describes.
func V1SpecsCampaignInputToDraft(in *v1specs.CampaignInput) domain.Campaign {
	u := V1SpecsCampaignInputToUpdate(in)

	var c domain.Campaign
	c.Title = in.Title.Value
	c.Description.Original = in.Description.Value
	c.PreviewText = in.PreviewText.Value
	c.ToneOfVoice = in.ToneOfVoice.Value
	c.ChannelContent.Voice.Transcript = in.VoiceTranscript.Value
	if u.Channels != nil {
		c.Channels = *u.Channels
	}
	if u.Assets != nil {
		c.Assets = *u.Assets
	}
	if u.AudioURLs != nil {
		c.AudioURLs = *u.AudioURLs
	}
	if u.Onboarding != nil {
		c.Onboarding = *u.Onboarding
	}
	c.ContactsFile = u.ContactsFile
	if u.Contacts != nil {
		c.Contacts = *u.Contacts
		c.ContactCount = len(c.Contacts)
	}

	return c
}

func DomainThreadsToV1Specs(in []domain.Thread) []v1specs.Thread {
	out := make([]v1specs.Thread, 0, len(in))
	for _, t := range in {
		out = append(out, v1specs.Thread{
			ContactId:       t.ContactID,
			ContactName:     t.ContactName,
			ContactPhone:    t.ContactPhone,
			ProfilePic:      optString(t.ProfilePic),
			LastMessage:     t.LastMessage,
			LastMessageTime: t.LastMessageTime,
			UnreadCount:     t.UnreadCount,
			CreatedAt:       t.CreatedAt,
		})
	}

	return out
}

func DomainMessageToV1Specs(in *domain.Message) *v1specs.Message {
	out := &v1specs.Message{
		ID:        in.ID,
		Sender:    v1specs.MessageSender(in.Sender),
		Type:      v1specs.MessageType(in.Type),
		Content:   in.Content,
		AudioUrl:  optString(in.AudioURL),
		Timestamp: in.Timestamp,
		CreatedAt: in.CreatedAt,
	}
	if len(in.Assets) > 0 {
		out.Assets = DomainAssetsToV1Specs(in.Assets)
	}

	return out
}

func V1SpecsMessageInputToDomain(in *v1specs.MessageInput) domain.Message {
	msg := domain.Message{
		ID:        in.ID.Value,
		Sender:    domain.MessageSender(in.Sender.Value),
		Type:      domain.MessageType(in.Type.Value),
		Content:   in.Content.Value,
		AudioURL:  in.AudioUrl.Value,
		Timestamp: in.Timestamp.Value,
	}
	if len(in.Assets) > 0 {
		msg.Assets = V1SpecsAssetsToDomain(in.Assets)
	}

	return msg
}

func domainOverviewToV1Specs(in []inbox.CampaignOverview) *v1specs.InboxOverview {
	out := &v1specs.InboxOverview{Campaigns: make([]v1specs.InboxCampaign, 0, len(in))}
	for _, o := range in {
		c := o.Campaign

		var launchedAt v1specs.NilDateTime
		if c.LaunchedAt != nil {
			launchedAt.SetTo(*c.LaunchedAt)
		} else {
			launchedAt.SetToNull()
		}

		out.Campaigns = append(out.Campaigns, v1specs.InboxCampaign{
			ID:           uuid.UUID(c.ID),
			Title:        c.Title,
			Description:  c.Description.Text(),
			ContactCount: len(o.Contacts),
			LaunchedAt:   launchedAt,
			AudioUrls:    domainAudioToV1Specs(c.AudioURLs),
			Assets:       DomainAssetsToV1Specs(c.Assets),
			Contacts:     DomainContactsToV1Specs(o.Contacts),
		})
	}

	return out
}
