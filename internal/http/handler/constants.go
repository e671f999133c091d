package handler

// Route parameter and query keys
const (
	paramID         = "id"
	paramPage       = "page"
	paramCollection = "collection"

	queryIndustry = "industry"
	querySearch   = "search"
)

// JSON response keys
const (
	jsonKeyError   = "error"
	jsonKeyMessage = "message"
)

// Multipart form field names
const (
	formFieldImage = "image"
)

// Request/response messages
const (
	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgInvalidRequestBody      = "invalid request body"

	msgInvalidCredentials = "invalid email or password"
	msgGenerateTokenFail  = "failed to generate token"

	msgInvalidQuoteID     = "invalid quote ID"
	msgQuoteNotFound      = "quote not found"
	msgSubmitQuoteFail    = "failed to submit quote request"
	msgListQuotesFail     = "failed to list quotes"
	msgUpdateQuoteFail    = "failed to update quote"
	msgDeleteQuoteFail    = "failed to delete quote"
	msgQuoteDeleted       = "quote deleted"
	msgInvalidQuoteStatus = "invalid quote status"
	msgQuoteDeclinedFinal = "a declined quote cannot change status"

	msgInvalidClientID  = "invalid client ID"
	msgClientNotFound   = "client not found"
	msgListClientsFail  = "failed to list clients"
	msgCreateClientFail = "failed to create client"
	msgUpdateClientFail = "failed to update client"
	msgDeleteClientFail = "failed to delete client"
	msgClientDeleted    = "client deleted"
	msgClientNameExists = "a client with this name already exists"
	msgListProspectFail = "failed to list prospects"

	msgInvalidItemID      = "invalid portfolio item ID"
	msgItemNotFound       = "portfolio item not found"
	msgListPortfolioFail  = "failed to list portfolio"
	msgCreateItemFail     = "failed to create portfolio item"
	msgUpdateItemFail     = "failed to update portfolio item"
	msgDeleteItemFail     = "failed to delete portfolio item"
	msgItemDeleted        = "portfolio item deleted"
	msgImageFileRequired  = "image file is required"
	msgImageReadFail      = "failed to read image file"
	msgImageUploadFail    = "failed to upload image"
	msgToggleItemFail     = "failed to toggle visibility"
	msgReplaceImageFail   = "failed to replace image"
	msgClientNameRequired = "client name is required"

	msgInvalidSiteImageID  = "invalid site image ID"
	msgSiteImageNotFound   = "site image not found"
	msgListSiteImagesFail  = "failed to list site images"
	msgSetSiteImageFail    = "failed to set custom image"
	msgRevertSiteImageFail = "failed to revert image"
	msgSiteImageReverted   = "image reverted to stock"

	msgDashboardFail = "failed to load dashboard"

	msgUnknownCollection = "unknown collection"
	msgStreamUnsupported = "streaming unsupported"

	msgSendNotificationFail = "failed to send notification"
)
