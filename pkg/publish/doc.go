// Package publish writes a rendered showcase page somewhere it can be
// served from: a local directory or an S3 bucket.
//
//	var buf bytes.Buffer
//	srv.RenderPage(&buf, server.PageOptions{Static: true})
//
//	pub, err := publish.NewS3Publisher(publish.NewS3Client("us-east-1"), "my-site")
//	if err != nil {
//	    return err
//	}
//	loc, err := pub.Publish(ctx, "index.html", buf.Bytes())
package publish
