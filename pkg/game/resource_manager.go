package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ResourceLoadError reports that an image resource is missing or cannot be decoded.
// It wraps the underlying file system or decoder error.
type ResourceLoadError struct {
	ID   string // Resource ID, empty when loading by path
	Path string // Resolved file path, empty when the ID could not be resolved
	Err  error
}

func (e *ResourceLoadError) Error() string {
	switch {
	case e.ID != "" && e.Path != "":
		return fmt.Sprintf("failed to load resource %s (%s): %v", e.ID, e.Path, e.Err)
	case e.ID != "":
		return fmt.Sprintf("failed to load resource %s: %v", e.ID, e.Err)
	default:
		return fmt.Sprintf("failed to load resource %s: %v", e.Path, e.Err)
	}
}

func (e *ResourceLoadError) Unwrap() error {
	return e.Err
}

// ErrResourceConfigNotLoaded is returned by ID based lookups before LoadResourceConfig succeeded.
var ErrResourceConfigNotLoaded = errors.New("resource config not loaded - call LoadResourceConfig first")

// ResourceManager is responsible for centralized management of game resources.
// It reads from an fs.FS (normally the embedded assets), resolves resource IDs
// through a YAML configuration and caches decoded images so that each path is
// decoded only once.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(embedded.FS())
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
//	img, err := rm.LoadImageByID("IMAGE_SPLASH_LOGO")
type ResourceManager struct {
	fsys       fs.FS                    // Source file system for all resources
	imageCache map[string]*ebiten.Image // Cache for loaded images: path -> Image

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager reading from fsys.
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:        fsys,
		imageCache:  make(map[string]*ebiten.Image),
		resourceMap: make(map[string]string),
	}
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
// It builds the resource ID -> path mapping used by the *ByID methods.
//
// Example:
//
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Fatal("Failed to load resource config:", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := fs.ReadFile(rm.fsys, configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded resource config %s (%d resources)", configPath, len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_SPLASH_LOGO -> assets/images/splash.png
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := path.Join(rm.config.BasePath, img.Path)

			// Default to PNG for images
			if path.Ext(fullPath) == "" {
				fullPath += ".png"
			}

			rm.resourceMap[img.ID] = fullPath
		}
	}
}

// ResolveID returns the file path registered for resourceID.
func (rm *ResourceManager) ResolveID(resourceID string) (string, error) {
	if rm.config == nil {
		return "", ErrResourceConfigNotLoaded
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return "", fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return filePath, nil
}

// OpenResource opens the raw byte stream of a resource by ID.
// The caller must close the returned reader.
//
// Errors are reported as *ResourceLoadError.
func (rm *ResourceManager) OpenResource(resourceID string) (io.ReadCloser, error) {
	filePath, err := rm.ResolveID(resourceID)
	if err != nil {
		return nil, &ResourceLoadError{ID: resourceID, Err: err}
	}

	file, err := rm.fsys.Open(filePath)
	if err != nil {
		return nil, &ResourceLoadError{ID: resourceID, Path: filePath, Err: err}
	}
	return file, nil
}

// DecodeImage decodes an image from r into a new, uncached ebiten.Image.
// The caller owns the returned image and is responsible for deallocating it.
func (rm *ResourceManager) DecodeImage(r io.Reader) (*ebiten.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &ResourceLoadError{Err: fmt.Errorf("failed to decode image: %w", err)}
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Error handling:
//   - Returns a *ResourceLoadError if the file does not exist or cannot be decoded.
//   - Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(filePath string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[filePath]; exists {
		return cachedImage, nil
	}

	data, err := fs.ReadFile(rm.fsys, filePath)
	if err != nil {
		return nil, &ResourceLoadError{Path: filePath, Err: err}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ResourceLoadError{Path: filePath, Err: fmt.Errorf("failed to decode image: %w", err)}
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[filePath] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(filePath string) *ebiten.Image {
	return rm.imageCache[filePath]
}

// LoadImageByID loads an image resource using its resource ID.
// The resource ID must be defined in the YAML configuration file.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	filePath, err := rm.ResolveID(resourceID)
	if err != nil {
		return nil, &ResourceLoadError{ID: resourceID, Err: err}
	}

	img, err := rm.LoadImage(filePath)
	if err != nil {
		var loadErr *ResourceLoadError
		if errors.As(err, &loadErr) {
			loadErr.ID = resourceID
		}
		return nil, err
	}
	return img, nil
}

// LoadResourceGroup loads every image of a resource group into the cache.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return ErrResourceConfigNotLoaded
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}
	return nil
}

// ReleaseImage drops a cached image and frees its GPU memory.
// Releasing a path that is not cached is a no-op.
func (rm *ResourceManager) ReleaseImage(filePath string) {
	img, exists := rm.imageCache[filePath]
	if !exists {
		return
	}
	img.Deallocate()
	delete(rm.imageCache, filePath)
}

// Dispose releases every cached image.
func (rm *ResourceManager) Dispose() {
	for filePath := range rm.imageCache {
		rm.ReleaseImage(filePath)
	}
	log.Printf("[ResourceManager] Released all cached images")
}
