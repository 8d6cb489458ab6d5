package domain

// CallbackAction is the closed set of inline-keyboard actions the bot
// understands. Callback data outside this set gets a "not supported" answer.
type CallbackAction string

const (
	CallbackHelp          CallbackAction = "help"
	CallbackResume        CallbackAction = "resume"
	CallbackPrice         CallbackAction = "price"
	CallbackBalance       CallbackAction = "balance"
	CallbackEarnings      CallbackAction = "stakingEarnings"
	CallbackMyAddress     CallbackAction = "myAddress"
	CallbackSetAddress    CallbackAction = "setAddress"
	CallbackRemoveAddress CallbackAction = "removeAddress"
	CallbackCopyAddress   CallbackAction = "copyAddress"
	CallbackReturn        CallbackAction = "return"
)

var callbackActions = map[string]CallbackAction{
	string(CallbackHelp):          CallbackHelp,
	string(CallbackResume):        CallbackResume,
	string(CallbackPrice):         CallbackPrice,
	string(CallbackBalance):       CallbackBalance,
	string(CallbackEarnings):      CallbackEarnings,
	string(CallbackMyAddress):     CallbackMyAddress,
	string(CallbackSetAddress):    CallbackSetAddress,
	string(CallbackRemoveAddress): CallbackRemoveAddress,
	string(CallbackCopyAddress):   CallbackCopyAddress,
	string(CallbackReturn):        CallbackReturn,
}

// ParseCallbackAction maps raw callback data onto the action enum.
func ParseCallbackAction(data string) (CallbackAction, bool) {
	action, ok := callbackActions[data]
	return action, ok
}
