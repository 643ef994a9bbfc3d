// Code generated by ogen, DO NOT EDIT.

package v1specs

// OperationName is the ogen operation name
type OperationName = string

const (
	BackfillInboxOperation       OperationName = "BackfillInbox"
	CleanupInboxOperation        OperationName = "CleanupInbox"
	CreateCampaignOperation      OperationName = "CreateCampaign"
	DeleteCampaignOperation      OperationName = "DeleteCampaign"
	DeleteThreadMessageOperation OperationName = "DeleteThreadMessage"
	ExtractContactsOperation     OperationName = "ExtractContacts"
	GenerateDescriptionOperation OperationName = "GenerateDescription"
	GetCampaignOperation         OperationName = "GetCampaign"
	GetCampaignDetailsOperation  OperationName = "GetCampaignDetails"
	GetInboxOverviewOperation    OperationName = "GetInboxOverview"
	GetInboxStatusOperation      OperationName = "GetInboxStatus"
	LaunchCampaignOperation      OperationName = "LaunchCampaign"
	ListCampaignsOperation       OperationName = "ListCampaigns"
	ListInboxContactsOperation   OperationName = "ListInboxContacts"
	ListThreadMessagesOperation  OperationName = "ListThreadMessages"
	MigrateInboxOperation        OperationName = "MigrateInbox"
	SaveThreadMessageOperation   OperationName = "SaveThreadMessage"
	SendThreadMessageOperation   OperationName = "SendThreadMessage"
	UpdateCampaignOperation      OperationName = "UpdateCampaign"
)
