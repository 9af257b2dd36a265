package app

// RequestKind selects the dialog that shows a Request.
type RequestKind int

const (
	RequestPrompt  RequestKind = iota // text entry on the on-screen keyboard
	RequestConfirm                    // yes / no question
	RequestPick                       // choose one of Options
	RequestNotice                     // message with a single OK
)

func (k RequestKind) String() string {
	switch k {
	case RequestPrompt:
		return "prompt"
	case RequestConfirm:
		return "confirm"
	case RequestPick:
		return "pick"
	case RequestNotice:
		return "notice"
	default:
		return "unknown"
	}
}

// NoticeLevel is the severity of a notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// step names the operation a Request continues when it is answered.
type step int

const (
	stepNone step = iota
	stepNewFolder
	stepConfirmDelete
	stepRename
	stepSearch
	stepBookmarkFolder
	stepBookmarkNewFolder
	stepPickDevice
)

// Request asks the presentation layer to show a dialog. The answer goes back to
// Controller.Complete together with the Request, which carries everything needed to
// finish the operation.
type Request struct {
	Kind    RequestKind
	Level   NoticeLevel // notices only
	Title   string
	Message string
	Initial string   // prompts: text the keyboard starts with
	Options []string // picks
	Current int      // picks: option highlighted first

	step   step
	target string // path the operation acts on
	name   string // display name of target
}

// Answer is the user's response to a Request.
type Answer struct {
	Cancelled bool
	Text      string // prompts
	Index     int    // picks
	Confirmed bool   // confirms
}

// Cancel is the Answer of a dismissed dialog.
func Cancel() Answer {
	return Answer{Cancelled: true}
}
