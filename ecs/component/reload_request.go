package component

// ReloadRequest asks for the named tuning prefab to be re-read and applied to
// every player built from it. Systems create a short-lived entity carrying
// it; an empty Prefab means every player.
type ReloadRequest struct {
	Prefab string
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
