package rest

// Response messages follow the original API contract word for word.

func toggleActiveMsg(kind string, active bool) string {
	if active {
		return kind + " activated successfully!"
	}
	return kind + " deactivated successfully!"
}

func toggleDeletedMsg(kind string, deleted bool) string {
	if deleted {
		return kind + " marked as deleted successfully!"
	}
	return kind + " restored successfully!"
}
