// Package serializer writes report data in JSON, YAML, or table format.
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// Table output flattens nested structures into dotted keys, suitable for
// terminal viewing; JSON and YAML are meant for programmatic consumption.
package serializer
