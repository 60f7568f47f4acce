package repoargs

type CreateUser struct {
	Username  string
	IsArbiter bool
}
