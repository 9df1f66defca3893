package model

type ResolutionStrategy string

const (
	ServerWins ResolutionStrategy = "server_wins"
	LocalWins  ResolutionStrategy = "local_wins"
	Merge      ResolutionStrategy = "merge"
)

// Conflict pairs the local and remote copies of one event whose
// modification histories diverged.
type Conflict struct {
	EventID string
	Local   Event
	Remote  Event
}

// DetectConflict reports a conflict only when the local copy carries
// unsynced edits and the remote copy was modified after it. Identical
// timestamps or a clean local copy mean the remote version can be
// applied directly.
func DetectConflict(local, remote Event, localDirty bool) (Conflict, bool) {
	if local.ID != remote.ID {
		return Conflict{}, false
	}
	if local.LastModified.Equal(remote.LastModified) {
		return Conflict{}, false
	}
	if localDirty && remote.LastModified.After(local.LastModified) {
		return Conflict{EventID: local.ID, Local: local, Remote: remote}, true
	}
	return Conflict{}, false
}

func ResolveConflict(local, remote Event, strategy ResolutionStrategy) Event {
	switch strategy {
	case LocalWins:
		return local
	case Merge:
		return mergeEvents(local, remote)
	default:
		return remote
	}
}

// mergeEvents uses the remote copy as the base and keeps local edits to
// the user-editable text fields.
func mergeEvents(local, remote Event) Event {
	merged := remote
	if local.Title != remote.Title && local.Title != "" {
		merged.Title = local.Title
	}
	if local.Description != "" && local.Description != remote.Description {
		merged.Description = local.Description
	}
	if local.Location != "" && local.Location != remote.Location {
		merged.Location = local.Location
	}
	return merged
}
