package config

// DefaultOutput is the index file written when no output path is configured.
const DefaultOutput = "search_db.json"

// docsRepos is the set of documentation repositories published under the
// lab website. They all follow the same layout: rendered HTML under docs/.
var docsRepos = []string{
	"Viscoelastic3D",
	"Viscoelastic-Worthington-jets-and-droplets-produced-by-bursting-bubbles",
	"BurstingBubble_Herschel-Bulkley",
	"soapy",
	"HoleySheet",
	"MultiRheoFlow",
	"fiber",
	"JumpingBubbles",
	"Drop-Impact",
	"Asymmetries-in-coalescence",
}

// DefaultConfig returns the stock repository set: the lab website, the
// blog, and the documentation sites.
func DefaultConfig() *Config {
	cfg := &Config{
		Output: DefaultOutput,
		Repositories: []Repository{
			{
				Name:    "comphy-lab.github.io",
				GitURL:  "https://github.com/comphy-lab/comphy-lab.github.io.git",
				BaseURL: "https://comphy-lab.org",
				Kind:    KindWebsite,
				Directories: []DirectoryMapping{
					{Dir: "_team", URL: "/team/"},
					{Dir: "_research", URL: "/research/"},
					{Dir: "_teaching", URL: "/teaching/"},
					{Dir: "_join-us", URL: "/join/"},
				},
			},
			{
				Name:    "CoMPhy-Lab-Blogs",
				GitURL:  "https://github.com/comphy-lab/CoMPhy-Lab-Blogs.git",
				BaseURL: "https://blogs.comphy-lab.org",
				Kind:    KindBlog,
				Blog: BlogSettings{
					PostDir:   "_posts",
					DateInURL: true,
					URLPrefix: "/blog",
				},
			},
		},
	}

	for _, name := range docsRepos {
		cfg.Repositories = append(cfg.Repositories, Repository{
			Name:    name,
			GitURL:  "https://github.com/comphy-lab/" + name,
			BaseURL: "https://comphy-lab.org/" + name,
			Kind:    KindDocs,
		})
	}

	return cfg
}
