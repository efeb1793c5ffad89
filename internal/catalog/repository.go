package catalog

import "github.com/mdrakibulhaquesardar/flx-cli/pkg/config"

var repositoryIface = mustParse("repository", `import '../entities/{{.Snake}}_entity.dart';

abstract class {{.Pascal}}Repository {
  Future<List<{{.Pascal}}Entity>> get{{.PluralPascal}}();

  Future<{{.Pascal}}Entity> get{{.Pascal}}ById(String id);
}
`)

var repositoryImpl = mustParse("repository_impl", `import '../../domain/entities/{{.Snake}}_entity.dart';
import '../../domain/repositories/{{.Snake}}_repository.dart';
import '../datasources/{{.Snake}}_remote_data_source.dart';

class {{.Pascal}}RepositoryImpl implements {{.Pascal}}Repository {
  {{.Pascal}}RepositoryImpl({required this.remoteDataSource});

  final {{.Pascal}}RemoteDataSource remoteDataSource;

  @override
  Future<List<{{.Pascal}}Entity>> get{{.PluralPascal}}() async {
    final models = await remoteDataSource.get{{.PluralPascal}}();
    return models.map((model) => model.toEntity()).toList();
  }

  @override
  Future<{{.Pascal}}Entity> get{{.Pascal}}ById(String id) async {
    final model = await remoteDataSource.get{{.Pascal}}ById(id);
    return model.toEntity();
  }
}
`)

// Repository renders the domain-layer repository interface.
func Repository(name string, cfg config.Config) string {
	return render(repositoryIface, newCtx(name, cfg))
}

// RepositoryImpl renders the data-layer repository implementation backed by
// the remote data source.
func RepositoryImpl(name string, cfg config.Config) string {
	return render(repositoryImpl, newCtx(name, cfg))
}
