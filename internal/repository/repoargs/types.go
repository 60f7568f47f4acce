package repoargs

type RepositoryName string

const (
	UserRepoName          RepositoryName = "user"
	WalletRepoName        RepositoryName = "wallet"
	LedgerEntryRepoName   RepositoryName = "ledger_entry"
	PaymentMethodRepoName RepositoryName = "payment_method"
	AdvertisementRepoName RepositoryName = "advertisement"
	OrderRepoName         RepositoryName = "order"
	ChatMessageRepoName   RepositoryName = "chat_message"
	AuditRecordRepoName   RepositoryName = "audit_record"
)
