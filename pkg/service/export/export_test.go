package export

// ObjectKey is exported for testing
func (d *Destination) ObjectKey(name string) string {
	return d.objectKey(name)
}
