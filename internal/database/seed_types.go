package database

// ProjectData represents project YAML structure in projects.yaml
type ProjectData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Link        string `yaml:"link,omitempty"`
}

// ProjectsFile wraps the projects array
type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

// BlogPostData represents blog post YAML structure in blog_posts.yaml
type BlogPostData struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// BlogPostsFile wraps the blog posts array
type BlogPostsFile struct {
	BlogPosts []BlogPostData `yaml:"blog_posts"`
}
