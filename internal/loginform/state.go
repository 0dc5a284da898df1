package loginform

// Failure says why the error banner is showing.
type Failure int

const (
	FailureNone      Failure = iota // banner hidden
	FailureRejected                 // server answered without a token
	FailureTransport                // network error, timeout, non-2xx, bad body
	FailureStorage                  // token could not be stored
)

func (f Failure) String() string {
	switch f {
	case FailureRejected:
		return "rejected"
	case FailureTransport:
		return "transport"
	case FailureStorage:
		return "storage"
	default:
		return "none"
	}
}

// Outcome is how one call to Submit ended.
type Outcome int

const (
	OutcomeInvalid   Outcome = iota // a field was empty, no request made
	OutcomeBusy                     // another submit was in flight
	OutcomeSucceeded                // token stored, navigated away
	OutcomeFailed                   // banner shown
	OutcomeAborted                  // form not mounted or unmounted mid-flight
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeBusy:
		return "busy"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// State is everything a surface needs to draw the form.
type State struct {
	Identifier        string
	IdentifierInvalid bool
	SecretInvalid     bool
	Remember          bool

	// ErrorVisible shows the static "id or password does not match" banner.
	ErrorVisible bool
	Failure      Failure

	// Submitting is true while a request is in flight; surfaces disable the
	// submit control.
	Submitting bool
	Mounted    bool
}

// BannerLines is the static text of the error banner.
var BannerLines = []string{
	"아이디 혹은 비밀번호가 일치하지 않습니다.",
	"입력한 내용을 다시 확인해 주세요.",
}
