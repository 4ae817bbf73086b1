package constants

// Exchange и routing keys шины уведомлений.
const (
	NotificationsExchange     = "classifieds_exchange"
	NotificationsExchangeType = "topic"

	// Решения модерации. notification-service подписан на notify.#
	RoutingKeyListingModeration = "notify.listing.moderation"
)
